package handler

import (
	"strconv"

	"placement-intel/internal/delivery/http/dto"
	"placement-intel/internal/delivery/http/middleware"
	"placement-intel/internal/pkg/response"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InnovationHandler struct {
	uc usecase.InnovationUsecase
}

func NewInnovationHandler(uc usecase.InnovationUsecase) *InnovationHandler {
	return &InnovationHandler{uc: uc}
}

func (h *InnovationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/innovation-projects")
	grp.Get("/", h.List)
	grp.Get("/:company_id", h.Detail)
}

func (h *InnovationHandler) List(c fiber.Ctx) error {
	docs, err := h.uc.ListInnovationProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.InnovationProjectsResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.InnovationProjectsResponse{
			CompanyID:   d.CompanyID,
			CompanyName: d.CompanyName,
			Projects:    d.JSONData,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *InnovationHandler) Detail(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	doc, err := h.uc.GetInnovationProjects(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InnovationProjectsResponse{
		CompanyID:   doc.CompanyID,
		CompanyName: doc.CompanyName,
		Projects:    doc.JSONData,
	})
}
