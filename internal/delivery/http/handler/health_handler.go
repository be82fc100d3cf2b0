package handler

import (
	"context"
	"time"

	"skill-roadmap/internal/domain/role"
	"skill-roadmap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	cacheDisabled = "disabled"
	cacheUp       = "up"
	cacheDown     = "down"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	catalog *role.Catalog
	cache   Pinger
}

// NewHealthHandler reports on the loaded catalog. cache is nil when the
// response cache is disabled.
func NewHealthHandler(catalog *role.Catalog, cache Pinger) *HealthHandler {
	return &HealthHandler{catalog: catalog, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cache := cacheDisabled
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		cache = cacheUp
		if err := h.cache.Ping(ctx); err != nil {
			cache = cacheDown
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"roles":               h.catalog.Len(),
		"dataset_fingerprint": h.catalog.Fingerprint(),
		"cache":               cache,
	})
}
