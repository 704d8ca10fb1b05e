package repository

import (
	"context"
	"encoding/json"

	"placement-intel/internal/database"
)

// HiringRoundDoc is one company's hiring-round document from
// job_role_details_json. The role details stay as raw JSON; the API passes
// them through untouched.
type HiringRoundDoc struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"company_id"`
	CompanyName string          `json:"company_name"`
	JobRoleJSON json.RawMessage `json:"job_role_json"`
}

type HiringRoundRepository interface {
	GetAll(ctx context.Context) ([]HiringRoundDoc, error)
	GetByCompany(ctx context.Context, companyID int64) (HiringRoundDoc, error)
}

type PostgresHiringRoundRepository struct {
	db database.DB
}

func NewPostgresHiringRoundRepository(db database.DB) *PostgresHiringRoundRepository {
	return &PostgresHiringRoundRepository{db: db}
}

func (r *PostgresHiringRoundRepository) GetAll(ctx context.Context) ([]HiringRoundDoc, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, company_id, COALESCE(company_name, ''), job_role_json
		 FROM job_role_details_json
		 ORDER BY company_name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HiringRoundDoc, 0)
	for rows.Next() {
		var (
			doc HiringRoundDoc
			raw []byte
		)
		if err := rows.Scan(&doc.ID, &doc.CompanyID, &doc.CompanyName, &raw); err != nil {
			return nil, err
		}
		doc.JobRoleJSON = json.RawMessage(raw)
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHiringRoundRepository) GetByCompany(ctx context.Context, companyID int64) (HiringRoundDoc, error) {
	var (
		doc HiringRoundDoc
		raw []byte
	)
	err := r.db.QueryRow(
		ctx,
		`SELECT id, company_id, COALESCE(company_name, ''), job_role_json
		 FROM job_role_details_json
		 WHERE company_id = $1`,
		companyID,
	).Scan(&doc.ID, &doc.CompanyID, &doc.CompanyName, &raw)
	if err != nil {
		if isNoRows(err) {
			return HiringRoundDoc{}, ErrRowNotFound
		}
		return HiringRoundDoc{}, err
	}
	doc.JobRoleJSON = json.RawMessage(raw)
	return doc, nil
}
