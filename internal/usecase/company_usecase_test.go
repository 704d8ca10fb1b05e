package usecase

import (
	"context"
	"errors"
	"testing"

	"placement-intel/internal/repository"
)

type mockCompanyRepo struct {
	shorts []repository.CompanyShort
	hits   []repository.CompanySearchHit
	full   repository.CompanyFull
	err    error
}

func (m *mockCompanyRepo) GetAllShort(context.Context) ([]repository.CompanyShort, error) {
	return m.shorts, m.err
}

func (m *mockCompanyRepo) GetFull(_ context.Context, companyID int64) (repository.CompanyFull, error) {
	if m.err != nil {
		return repository.CompanyFull{}, m.err
	}
	if m.full.CompanyID != companyID {
		return repository.CompanyFull{}, repository.ErrRowNotFound
	}
	return m.full, nil
}

func (m *mockCompanyRepo) SearchHits(context.Context) ([]repository.CompanySearchHit, error) {
	return m.hits, m.err
}

func TestCompany_SearchCompanies_FiltersAndResolvesTier(t *testing.T) {
	uc := NewCompanyUsecase(&mockCompanyRepo{hits: []repository.CompanySearchHit{
		{CompanyID: 1, Name: "Google", TierLevel: ""},
		{CompanyID: 2, Name: "Amazon.com Services", TierLevel: "tier 3"},
		{CompanyID: 3, Name: "Unknown Widgets Ltd", TierLevel: "tier 2"},
	}}, nil)

	got, err := uc.SearchCompanies(context.Background(), "GOOG")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Google" {
		t.Fatalf("expected the Google hit, got %+v", got)
	}
	if got[0].Tier != "Tier 1" {
		t.Fatalf("override must win for Google, got %q", got[0].Tier)
	}

	amazon, err := uc.SearchCompanies(context.Background(), "amazon")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(amazon) != 1 || amazon[0].Tier != "Tier 1" {
		t.Fatalf("partial override must win for Amazon.com, got %+v", amazon)
	}

	all, err := uc.SearchCompanies(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty query must return everything, got %d", len(all))
	}
	if all[2].Tier != "Tier 2" {
		t.Fatalf("db tier must normalize for unmapped names, got %q", all[2].Tier)
	}
}

func TestCompany_GetCompany_NotFound(t *testing.T) {
	uc := NewCompanyUsecase(&mockCompanyRepo{full: repository.CompanyFull{CompanyID: 7}}, nil)

	if _, err := uc.GetCompany(context.Background(), 7); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.GetCompany(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.GetCompany(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
