package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"skill-roadmap/internal/config"
	"skill-roadmap/internal/delivery/http/handler"
	"skill-roadmap/internal/delivery/http/middleware"
	"skill-roadmap/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap loads the dataset and builds the HTTP app. The returned cleanup
// releases the container resources.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	app := New(cfg, c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger, "/health")
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var pinger handler.Pinger
	if c.Cache != nil {
		pinger = c.Cache
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.Catalog, pinger),
		handler.NewRecommendationHandler(c.Recommendation),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
