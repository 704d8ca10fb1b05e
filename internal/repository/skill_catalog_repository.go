package repository

import (
	"context"
	"strings"

	"placement-intel/internal/database"
	"placement-intel/internal/domain/matrix"
)

type SkillCatalogRepository interface {
	GetAll(ctx context.Context) ([]matrix.SkillDefinition, error)
}

// shortKeyAliases maps fragments of catalog skill names to the staging column
// the data is actually stored under. The staging table predates the catalog
// and its column names never got renamed to match.
var shortKeyAliases = []struct {
	nameFragment string
	column       string
}{
	{"coding", "coding"},
	{"dsa", "data_structures_and_algorithms"},
	{"oop", "object_oriented_programming_and_design"},
	{"aptitude", "aptitude_and_problem_solving"},
	{"communication", "communication_skills"},
	{"ai", "ai_native_engineering"},
	{"cloud", "devops_and_cloud"},
	{"sql", "sql_and_design"},
	{"software", "software_engineering"},
	{"system", "system_design_and_architecture"},
	{"networking", "computer_networking"},
	{"os", "operating_system"},
}

// NormalizeShortKey picks the staging column key for one catalog entry:
// alias by name fragment first, then the stored short name, then the skill
// name itself, slug-cleaned either way.
func NormalizeShortKey(skillName, shortName string) string {
	lowered := strings.ToLower(skillName)
	for _, a := range shortKeyAliases {
		if strings.Contains(lowered, a.nameFragment) {
			return matrix.CleanKey(a.column)
		}
	}
	if strings.TrimSpace(shortName) != "" {
		return matrix.CleanKey(shortName)
	}
	return matrix.CleanKey(skillName)
}

type PostgresSkillCatalogRepository struct {
	db database.DB
}

func NewPostgresSkillCatalogRepository(db database.DB) *PostgresSkillCatalogRepository {
	return &PostgresSkillCatalogRepository{db: db}
}

func (r *PostgresSkillCatalogRepository) GetAll(ctx context.Context) ([]matrix.SkillDefinition, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT skill_set_id, skill_set_name, COALESCE(short_name, ''), COALESCE(skill_set_description, '')
		 FROM skill_set_master
		 ORDER BY skill_set_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matrix.SkillDefinition, 0)
	for rows.Next() {
		var (
			def       matrix.SkillDefinition
			shortName string
		)
		if err := rows.Scan(&def.ID, &def.Name, &shortName, &def.Description); err != nil {
			return nil, err
		}
		def.ShortKey = NormalizeShortKey(def.Name, shortName)
		out = append(out, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
