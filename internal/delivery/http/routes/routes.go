package routes

import (
	"skill-roadmap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	recommend *handler.RecommendationHandler
}

func NewRegistry(health *handler.HealthHandler, recommend *handler.RecommendationHandler) *Registry {
	return &Registry{health: health, recommend: recommend}
}

// Register mounts the recommendation endpoint both at the root, where existing
// clients post to it, and under the versioned API prefix.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.recommend.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	r.recommend.RegisterRoutes(v1)
}
