package handler

import (
	"strconv"

	"placement-intel/internal/delivery/http/dto"
	"placement-intel/internal/delivery/http/middleware"
	"placement-intel/internal/pkg/response"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HiringHandler struct {
	uc usecase.HiringUsecase
}

func NewHiringHandler(uc usecase.HiringUsecase) *HiringHandler {
	return &HiringHandler{uc: uc}
}

func (h *HiringHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/hiring-rounds")
	grp.Get("/", h.List)
	grp.Get("/:company_id", h.Detail)
}

func (h *HiringHandler) List(c fiber.Ctx) error {
	docs, err := h.uc.ListHiringRounds(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.HiringRoundsResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.HiringRoundsResponse{
			CompanyID:   d.CompanyID,
			CompanyName: d.CompanyName,
			JobRoles:    d.JobRoleJSON,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *HiringHandler) Detail(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	doc, err := h.uc.GetHiringRounds(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HiringRoundsResponse{
		CompanyID:   doc.CompanyID,
		CompanyName: doc.CompanyName,
		JobRoles:    doc.JobRoleJSON,
	})
}
