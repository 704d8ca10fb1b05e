package handler

import (
	"strconv"
	"strings"

	"placement-intel/internal/delivery/http/dto"
	"placement-intel/internal/delivery/http/middleware"
	"placement-intel/internal/pkg/response"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skill-analytics")
	grp.Get("/", h.Get)
	grp.Post("/refresh", h.Refresh)

	r.Patch("/staging/:id/processed", h.MarkProcessed)
}

// Get serves the full proficiency matrix with per-skill stats. When the
// companies query selects a roster, the capped strategic insights ride along.
func (h *AnalyticsHandler) Get(c fiber.Ctx) error {
	result, err := h.uc.Matrix(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.SkillAnalyticsResponse{
		Matrix: result.Matrix,
		Stats:  result.Stats,
	}

	companies := parseCompaniesQuery(c.Query("companies"))
	if len(companies) > 0 {
		insights, err := h.uc.Insights(c.Context(), companies)
		if err != nil {
			return mapUsecaseError(err)
		}
		capped := insights.Capped()
		res.Insights = &capped
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AnalyticsHandler) Refresh(c fiber.Ctx) error {
	if err := h.uc.Refresh(c.Context()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Analytics cache refreshed", nil)
}

func (h *AnalyticsHandler) MarkProcessed(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if err := h.uc.MarkProcessed(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Staging row marked processed", nil)
}

func parseCompaniesQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
