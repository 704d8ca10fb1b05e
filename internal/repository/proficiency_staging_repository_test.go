package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"placement-intel/internal/database"
)

type stubDB struct {
	dynamicRows  []map[string]any
	dynamicErr   error
	execAffected int64
	execErr      error
}

func (s *stubDB) Ping(context.Context) error { return nil }
func (s *stubDB) Close() error               { return nil }

func (s *stubDB) Exec(context.Context, string, ...any) (int64, error) {
	return s.execAffected, s.execErr
}

func (s *stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDB) QueryRow(context.Context, string, ...any) database.Row {
	return errRow{}
}

func (s *stubDB) QueryDynamic(context.Context, string, ...any) ([]map[string]any, error) {
	return s.dynamicRows, s.dynamicErr
}

func (s *stubDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDB) SQLDB() *sql.DB { return nil }

type errRow struct{}

func (errRow) Scan(...any) error { return errors.New("not implemented") }

func TestStaging_GetAll_ExtractsMetaAndLevels(t *testing.T) {
	db := &stubDB{dynamicRows: []map[string]any{
		{
			"id":            int64(7),
			"companies":     "Acme",
			"processed":     false,
			"Coding Skill":  "Advanced",
			"dsa":           nil,
			"communication": "   ",
		},
	}}

	repo := NewPostgresProficiencyStagingRepository(db)
	rows, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}

	row := rows[0]
	if row.ID != 7 || row.CompanyName != "Acme" {
		t.Fatalf("meta extraction failed: %+v", row)
	}
	if _, ok := row.Levels["processed"]; ok {
		t.Fatalf("bookkeeping columns must not become levels")
	}
	if v := row.Levels["Coding Skill"]; v == nil || *v != "Advanced" {
		t.Fatalf("original column key missing: %+v", row.Levels)
	}
	if v, ok := row.Levels["coding_skill"]; !ok || v == nil || *v != "Advanced" {
		t.Fatalf("cleaned column key missing: %+v", row.Levels)
	}
	if v, ok := row.Levels["dsa"]; !ok || v != nil {
		t.Fatalf("SQL NULL must stay a nil level, got %+v", v)
	}
	if v := row.Levels["communication"]; v != nil {
		t.Fatalf("blank text must normalize to nil, got %q", *v)
	}
}

func TestStaging_GetAll_StringifiesUnexpectedTypes(t *testing.T) {
	db := &stubDB{dynamicRows: []map[string]any{
		{"id": int64(1), "companies": "Acme", "legacy_flag": true, "score": float64(3.5)},
	}}

	repo := NewPostgresProficiencyStagingRepository(db)
	rows, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v := rows[0].Levels["legacy_flag"]; v == nil || *v != "true" {
		t.Fatalf("bool cell must stringify, got %+v", v)
	}
	if v := rows[0].Levels["score"]; v == nil || *v != "3.5" {
		t.Fatalf("numeric cell must stringify, got %+v", v)
	}
}

func TestStaging_MarkProcessed_NoRowIsNotFound(t *testing.T) {
	repo := NewPostgresProficiencyStagingRepository(&stubDB{execAffected: 0})
	if err := repo.MarkProcessed(context.Background(), 99); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}

	repo = NewPostgresProficiencyStagingRepository(&stubDB{execAffected: 1})
	if err := repo.MarkProcessed(context.Background(), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
