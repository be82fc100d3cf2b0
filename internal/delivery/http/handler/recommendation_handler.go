package handler

import (
	"context"

	"skill-roadmap/internal/delivery/http/dto"
	"skill-roadmap/internal/delivery/http/middleware"
	"skill-roadmap/internal/pkg/response"
	"skill-roadmap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Recommender interface {
	Recommend(ctx context.Context, in usecase.RecommendationInput) (usecase.Recommendation, error)
}

type RecommendationHandler struct {
	uc Recommender
}

func NewRecommendationHandler(uc Recommender) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageInvalidBody, nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, response.MessageValidationFailed, dto.FieldErrors(err), err)
	}

	rec, err := h.uc.Recommend(c.Context(), usecase.RecommendationInput{
		Skills:          dto.Values(req.Skills),
		Interests:       dto.Values(req.Interests),
		CurrentPosition: *req.CurrentPosition,
		DesiredRole:     *req.DesiredRole,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.RecommendationResponse{
		Status:        rec.Status,
		JobSummary:    rec.JobSummary,
		MissingSkills: rec.MissingSkills,
		Roadmap:       make([]dto.RoadmapStepResponse, 0, len(rec.Roadmap)),
	}
	if out.MissingSkills == nil {
		out.MissingSkills = []string{}
	}
	for _, s := range rec.Roadmap {
		out.Roadmap = append(out.Roadmap, dto.RoadmapStepResponse{Step: s.Step, Description: s.Description})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
