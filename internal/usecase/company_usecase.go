package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"placement-intel/internal/domain/tier"
	"placement-intel/internal/repository"
)

// CompanySearchItem is one autocomplete suggestion, with the tier already
// resolved through the override table.
type CompanySearchItem struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	LogoURL   string `json:"logo_url"`
	Tier      string `json:"tier"`
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]repository.CompanyShort, error)
	GetCompany(ctx context.Context, companyID int64) (repository.CompanyFull, error)
	SearchCompanies(ctx context.Context, query string) ([]CompanySearchItem, error)
}

type Company struct {
	repo   repository.CompanyRepository
	logger *log.Logger
}

func NewCompanyUsecase(repo repository.CompanyRepository, logger *log.Logger) *Company {
	return &Company{repo: repo, logger: logger}
}

func (u *Company) ListCompanies(ctx context.Context) ([]repository.CompanyShort, error) {
	items, err := u.repo.GetAllShort(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Company] List fetch failed: %v", err)
		}
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Company) GetCompany(ctx context.Context, companyID int64) (repository.CompanyFull, error) {
	if companyID <= 0 {
		return repository.CompanyFull{}, ErrInvalidInput
	}
	item, err := u.repo.GetFull(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return repository.CompanyFull{}, ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Company] Detail fetch failed for id=%d: %v", companyID, err)
		}
		return repository.CompanyFull{}, ErrInternal
	}
	return item, nil
}

// SearchCompanies filters the slim company list by case-insensitive name
// containment. An empty query returns everything, which the navbar uses to
// prime its suggestion list.
func (u *Company) SearchCompanies(ctx context.Context, query string) ([]CompanySearchItem, error) {
	hits, err := u.repo.SearchHits(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Company] Search fetch failed: %v", err)
		}
		return nil, ErrInternal
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]CompanySearchItem, 0, len(hits))
	for _, h := range hits {
		if q != "" && !strings.Contains(strings.ToLower(h.Name), q) {
			continue
		}
		out = append(out, CompanySearchItem{
			CompanyID: h.CompanyID,
			Name:      h.Name,
			Category:  h.Category,
			LogoURL:   h.LogoURL,
			Tier:      tier.Normalize(tier.ForCompany(h.Name, h.TierLevel)),
		})
	}
	return out, nil
}
