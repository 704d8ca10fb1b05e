package usecase

import (
	"context"
	"errors"
	"log"

	"placement-intel/internal/repository"
)

type HiringUsecase interface {
	ListHiringRounds(ctx context.Context) ([]repository.HiringRoundDoc, error)
	GetHiringRounds(ctx context.Context, companyID int64) (repository.HiringRoundDoc, error)
}

type Hiring struct {
	repo   repository.HiringRoundRepository
	logger *log.Logger
}

func NewHiringUsecase(repo repository.HiringRoundRepository, logger *log.Logger) *Hiring {
	return &Hiring{repo: repo, logger: logger}
}

// ListHiringRounds returns every company that has hiring data. Documents
// with no roles are filtered out so the hiring page never shows empty cards.
func (u *Hiring) ListHiringRounds(ctx context.Context) ([]repository.HiringRoundDoc, error) {
	docs, err := u.repo.GetAll(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Hiring] List fetch failed: %v", err)
		}
		return nil, ErrInternal
	}

	out := make([]repository.HiringRoundDoc, 0, len(docs))
	for _, d := range docs {
		if len(d.JobRoleJSON) == 0 || string(d.JobRoleJSON) == "null" {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (u *Hiring) GetHiringRounds(ctx context.Context, companyID int64) (repository.HiringRoundDoc, error) {
	if companyID <= 0 {
		return repository.HiringRoundDoc{}, ErrInvalidInput
	}
	doc, err := u.repo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return repository.HiringRoundDoc{}, ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Hiring] Detail fetch failed for company=%d: %v", companyID, err)
		}
		return repository.HiringRoundDoc{}, ErrInternal
	}
	return doc, nil
}
