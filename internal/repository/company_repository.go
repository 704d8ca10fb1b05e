package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"placement-intel/internal/database"

	"github.com/jackc/pgx/v5"
)

// CompanyShort is the card/list payload stored pre-rendered in company_json.
type CompanyShort struct {
	JSONID    int64           `json:"json_id"`
	CompanyID int64           `json:"company_id"`
	ShortJSON json.RawMessage `json:"short_json"`
}

// CompanyFull is the detail-page payload, fetched lazily per company.
type CompanyFull struct {
	JSONID    int64           `json:"json_id"`
	CompanyID int64           `json:"company_id"`
	FullJSON  json.RawMessage `json:"full_json"`
}

// CompanySearchHit is the slim autocomplete projection of short_json.
type CompanySearchHit struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	LogoURL   string `json:"logo_url"`
	TierLevel string `json:"tier_level"`
}

type CompanyRepository interface {
	GetAllShort(ctx context.Context) ([]CompanyShort, error)
	GetFull(ctx context.Context, companyID int64) (CompanyFull, error)
	SearchHits(ctx context.Context) ([]CompanySearchHit, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) GetAllShort(ctx context.Context) ([]CompanyShort, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT json_id, company_id, short_json FROM company_json ORDER BY company_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CompanyShort, 0)
	for rows.Next() {
		var (
			item CompanyShort
			raw  []byte
		)
		if err := rows.Scan(&item.JSONID, &item.CompanyID, &raw); err != nil {
			return nil, err
		}
		item.ShortJSON = json.RawMessage(raw)
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) GetFull(ctx context.Context, companyID int64) (CompanyFull, error) {
	var (
		item CompanyFull
		raw  []byte
	)
	err := r.db.QueryRow(
		ctx,
		`SELECT json_id, company_id, full_json FROM company_json WHERE company_id = $1`,
		companyID,
	).Scan(&item.JSONID, &item.CompanyID, &raw)
	if err != nil {
		if isNoRows(err) {
			return CompanyFull{}, ErrRowNotFound
		}
		return CompanyFull{}, err
	}
	item.FullJSON = json.RawMessage(raw)
	return item, nil
}

// SearchHits projects the fields the navbar autocomplete needs out of every
// company's short_json. The full list is small enough that filtering happens
// in the caller over one fetch.
func (r *PostgresCompanyRepository) SearchHits(ctx context.Context) ([]CompanySearchHit, error) {
	shorts, err := r.GetAllShort(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CompanySearchHit, 0, len(shorts))
	for _, s := range shorts {
		var payload struct {
			Name      string `json:"name"`
			Category  string `json:"category"`
			LogoURL   string `json:"logo_url"`
			TierLevel string `json:"tier_level"`
		}
		if len(s.ShortJSON) > 0 {
			// Malformed documents degrade to an id-only hit; they are not
			// worth failing the whole list over.
			_ = json.Unmarshal(s.ShortJSON, &payload)
		}
		out = append(out, CompanySearchHit{
			CompanyID: s.CompanyID,
			Name:      payload.Name,
			Category:  payload.Category,
			LogoURL:   payload.LogoURL,
			TierLevel: payload.TierLevel,
		})
	}
	return out, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
