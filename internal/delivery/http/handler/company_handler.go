package handler

import (
	"strconv"

	"placement-intel/internal/delivery/http/dto"
	"placement-intel/internal/delivery/http/middleware"
	"placement-intel/internal/pkg/response"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/companies")
	grp.Get("/", h.List)
	// /search must register before the :company_id wildcard.
	grp.Get("/search", h.Search)
	grp.Get("/:company_id", h.Detail)
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCompanies(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.CompanyShortResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CompanyShortResponse{CompanyID: it.CompanyID, Short: it.ShortJSON})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CompanyHandler) Detail(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	item, err := h.uc.GetCompany(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CompanyFullResponse{
		CompanyID: item.CompanyID,
		Full:      item.FullJSON,
	})
}

func (h *CompanyHandler) Search(c fiber.Ctx) error {
	items, err := h.uc.SearchCompanies(c.Context(), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.CompanySearchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CompanySearchResponse{
			CompanyID: it.CompanyID,
			Name:      it.Name,
			Category:  it.Category,
			LogoURL:   it.LogoURL,
			Tier:      it.Tier,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
