package usecase

import (
	"context"
	"errors"
	"log"

	"placement-intel/internal/repository"
)

type InnovationUsecase interface {
	ListInnovationProjects(ctx context.Context) ([]repository.InnovationProjectDoc, error)
	GetInnovationProjects(ctx context.Context, companyID int64) (repository.InnovationProjectDoc, error)
}

type Innovation struct {
	repo   repository.InnovationProjectRepository
	logger *log.Logger
}

func NewInnovationUsecase(repo repository.InnovationProjectRepository, logger *log.Logger) *Innovation {
	return &Innovation{repo: repo, logger: logger}
}

func (u *Innovation) ListInnovationProjects(ctx context.Context) ([]repository.InnovationProjectDoc, error) {
	docs, err := u.repo.GetAll(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Innovation] List fetch failed: %v", err)
		}
		return nil, ErrInternal
	}

	out := make([]repository.InnovationProjectDoc, 0, len(docs))
	for _, d := range docs {
		if len(d.JSONData) == 0 || string(d.JSONData) == "null" {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (u *Innovation) GetInnovationProjects(ctx context.Context, companyID int64) (repository.InnovationProjectDoc, error) {
	if companyID <= 0 {
		return repository.InnovationProjectDoc{}, ErrInvalidInput
	}
	doc, err := u.repo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return repository.InnovationProjectDoc{}, ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[Innovation] Detail fetch failed for company=%d: %v", companyID, err)
		}
		return repository.InnovationProjectDoc{}, ErrInternal
	}
	return doc, nil
}
