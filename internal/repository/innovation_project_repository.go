package repository

import (
	"context"
	"encoding/json"

	"placement-intel/internal/database"
)

// InnovationProjectDoc is one company's innovation-project document from
// innovx_json, raw project data included.
type InnovationProjectDoc struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"company_id"`
	CompanyName string          `json:"company_name"`
	JSONData    json.RawMessage `json:"json_data"`
}

type InnovationProjectRepository interface {
	GetAll(ctx context.Context) ([]InnovationProjectDoc, error)
	GetByCompany(ctx context.Context, companyID int64) (InnovationProjectDoc, error)
}

type PostgresInnovationProjectRepository struct {
	db database.DB
}

func NewPostgresInnovationProjectRepository(db database.DB) *PostgresInnovationProjectRepository {
	return &PostgresInnovationProjectRepository{db: db}
}

func (r *PostgresInnovationProjectRepository) GetAll(ctx context.Context) ([]InnovationProjectDoc, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, company_id, COALESCE(name, ''), json_data
		 FROM innovx_json
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InnovationProjectDoc, 0)
	for rows.Next() {
		var (
			doc InnovationProjectDoc
			raw []byte
		)
		if err := rows.Scan(&doc.ID, &doc.CompanyID, &doc.CompanyName, &raw); err != nil {
			return nil, err
		}
		doc.JSONData = json.RawMessage(raw)
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresInnovationProjectRepository) GetByCompany(ctx context.Context, companyID int64) (InnovationProjectDoc, error) {
	var (
		doc InnovationProjectDoc
		raw []byte
	)
	err := r.db.QueryRow(
		ctx,
		`SELECT id, company_id, COALESCE(name, ''), json_data
		 FROM innovx_json
		 WHERE company_id = $1`,
		companyID,
	).Scan(&doc.ID, &doc.CompanyID, &doc.CompanyName, &raw)
	if err != nil {
		if isNoRows(err) {
			return InnovationProjectDoc{}, ErrRowNotFound
		}
		return InnovationProjectDoc{}, err
	}
	doc.JSONData = json.RawMessage(raw)
	return doc, nil
}
