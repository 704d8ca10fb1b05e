package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"placement-intel/internal/database"
	"placement-intel/internal/domain/matrix"
)

var ErrRowNotFound = errors.New("row not found")

type ProficiencyStagingRepository interface {
	GetAll(ctx context.Context) ([]matrix.CompanyRow, error)
	MarkProcessed(ctx context.Context, id int64) error
}

type PostgresProficiencyStagingRepository struct {
	db database.DB
}

func NewPostgresProficiencyStagingRepository(db database.DB) *PostgresProficiencyStagingRepository {
	return &PostgresProficiencyStagingRepository{db: db}
}

// stagingMetaColumns never carry proficiency values.
var stagingMetaColumns = map[string]struct{}{
	"id":            {},
	"companies":     {},
	"processed":     {},
	"processed_at":  {},
	"error_message": {},
	"created_at":    {},
	"updated_at":    {},
}

// GetAll fetches every staging row, processed or not, so no data is missed.
// The skill columns are dynamic, so rows come back as maps; each value is
// kept under its original column name and additionally under the cleaned
// slug, which is what catalog lookups expect.
func (r *PostgresProficiencyStagingRepository) GetAll(ctx context.Context) ([]matrix.CompanyRow, error) {
	raw, err := r.db.QueryDynamic(
		ctx,
		`SELECT * FROM staging_company_skill_levels ORDER BY companies ASC`,
	)
	if err != nil {
		return nil, err
	}

	out := make([]matrix.CompanyRow, 0, len(raw))
	for _, rec := range raw {
		row := matrix.CompanyRow{Levels: make(map[string]*string)}

		if id, ok := toInt64(rec["id"]); ok {
			row.ID = id
		}
		if name := toStringValue(rec["companies"]); name != nil {
			row.CompanyName = *name
		}

		for key, value := range rec {
			if _, meta := stagingMetaColumns[key]; meta {
				continue
			}
			v := toStringValue(value)
			row.Levels[key] = v
			if clean := matrix.CleanKey(key); clean != key {
				row.Levels[clean] = v
			}
		}

		out = append(out, row)
	}
	return out, nil
}

func (r *PostgresProficiencyStagingRepository) MarkProcessed(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(
		ctx,
		`UPDATE staging_company_skill_levels SET processed = TRUE, processed_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRowNotFound
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// toStringValue renders a dynamic cell as display text. SQL NULL stays nil;
// non-text values are stringified so unexpected column types remain visible
// instead of being dropped.
func toStringValue(v any) *string {
	if v == nil {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case bool:
		s = strconv.FormatBool(t)
	case time.Time:
		s = t.UTC().Format(time.RFC3339)
	case int64:
		s = strconv.FormatInt(t, 10)
	case int32:
		s = strconv.FormatInt(int64(t), 10)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s = fmt.Sprint(t)
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
