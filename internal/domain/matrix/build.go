package matrix

import (
	"sort"
	"strings"

	"placement-intel/internal/domain/taxonomy"
)

// metaKeys are staging bookkeeping columns, never skill columns.
var metaKeys = map[string]struct{}{
	"id":            {},
	"companies":     {},
	"processed":     {},
	"processed_at":  {},
	"error_message": {},
	"created_at":    {},
	"updated_at":    {},
}

// Column is one skill column of the rendered matrix. Known marks columns
// backed by the catalog; extras come straight from the staging data.
type Column struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Known       bool   `json:"known"`
}

// Cell is one resolved (company, skill) pair. Exactly one of the three
// states holds: a band code, preserved raw text, or absent.
type Cell struct {
	Column   string `json:"column"`
	BandCode string `json:"band_code,omitempty"`
	RawText  string `json:"raw_text,omitempty"`
	Absent   bool   `json:"absent"`
}

type Row struct {
	CompanyName string `json:"company_name"`
	Cells       []Cell `json:"cells"`
}

type Matrix struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Columns derives the display column list: catalog skills that appear in the
// data first, in catalog order, then any staging columns the catalog does not
// know about, with humanized labels. Meta columns are excluded.
func Columns(skills []SkillDefinition, rows []CompanyRow) []Column {
	dataKeys := make([]string, 0)
	seen := map[string]struct{}{}
	for _, row := range rows {
		for k := range row.Levels {
			if _, meta := metaKeys[k]; meta {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			dataKeys = append(dataKeys, k)
		}
	}

	known := map[string]struct{}{}
	out := make([]Column, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s.ShortKey]; !ok {
			if _, ok := seen[CleanKey(s.ShortKey)]; !ok {
				continue
			}
		}
		known[s.ShortKey] = struct{}{}
		known[CleanKey(s.ShortKey)] = struct{}{}
		out = append(out, Column{Key: s.ShortKey, Label: s.Name, Description: s.Description, Known: true})
	}

	extras := make([]string, 0)
	for _, k := range dataKeys {
		if _, ok := known[k]; ok {
			continue
		}
		if _, ok := known[CleanKey(k)]; ok {
			continue
		}
		known[k] = struct{}{}
		known[CleanKey(k)] = struct{}{}
		extras = append(extras, k)
	}
	// Extras come from map iteration; sort so columns never jitter.
	sort.Strings(extras)
	for _, k := range extras {
		out = append(out, Column{Key: k, Label: Humanize(k), Known: false})
	}
	return out
}

// Humanize turns a slug key into a display label: underscores to spaces,
// each word title-cased.
func Humanize(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Build resolves every (company, column) cell of the matrix. It is total:
// each cell is a band, preserved raw text, or absent, so the presentation
// layer never needs a failure path.
func Build(skills []SkillDefinition, rows []CompanyRow) Matrix {
	cols := Columns(skills, rows)

	out := Matrix{Columns: cols, Rows: make([]Row, 0, len(rows))}
	for _, row := range rows {
		cells := make([]Cell, 0, len(cols))
		for _, col := range cols {
			def := SkillDefinition{ShortKey: col.Key}
			raw, ok := ResolveSkillValue(row, def)
			if !ok {
				cells = append(cells, Cell{Column: col.Key, Absent: true})
				continue
			}
			outcome := taxonomy.Classify(raw)
			switch outcome.Kind {
			case taxonomy.Resolved:
				cells = append(cells, Cell{Column: col.Key, BandCode: outcome.Band.Code})
			case taxonomy.Unresolved:
				cells = append(cells, Cell{Column: col.Key, RawText: outcome.Raw})
			default:
				cells = append(cells, Cell{Column: col.Key, Absent: true})
			}
		}
		out.Rows = append(out.Rows, Row{CompanyName: row.CompanyName, Cells: cells})
	}
	return out
}
