package seeder

import (
	"context"
	"fmt"

	"placement-intel/internal/database"
)

type SkillCatalogSeeder struct{}

func (SkillCatalogSeeder) Name() string { return "skill_catalog" }

// Run inserts the baseline placement skill catalog. Names are the display
// labels the dashboard renders; short names anchor the staging column lookup.
func (SkillCatalogSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_set_master",
		"skill_set_id", "skill_set_name", "short_name", "skill_set_description"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name        string
		ShortName   string
		Description string
	}{
		{Name: "Coding", ShortName: "coding", Description: "Hands-on programming proficiency"},
		{Name: "DSA", ShortName: "data_structures_and_algorithms", Description: "Data structures and algorithms"},
		{Name: "OOP & Design", ShortName: "object_oriented_programming_and_design", Description: "Object-oriented programming and design"},
		{Name: "Aptitude", ShortName: "aptitude_and_problem_solving", Description: "Aptitude and problem solving"},
		{Name: "Communication", ShortName: "communication_skills", Description: "Verbal and written communication"},
		{Name: "AI Native Engineering", ShortName: "ai_native_engineering", Description: "Working with AI-assisted tooling"},
		{Name: "DevOps & Cloud", ShortName: "devops_and_cloud", Description: "Deployment, infrastructure, cloud platforms"},
		{Name: "SQL & Design", ShortName: "sql_and_design", Description: "Database querying and schema design"},
		{Name: "Software Engineering", ShortName: "software_engineering", Description: "Engineering practice and collaboration"},
		{Name: "System Design & Architecture", ShortName: "system_design_and_architecture", Description: "Large-scale system design"},
		{Name: "Computer Networking", ShortName: "computer_networking", Description: "Networks and protocols"},
		{Name: "Operating System", ShortName: "operating_system", Description: "OS internals and concurrency"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skill_set_master (skill_set_name, short_name, skill_set_description)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (skill_set_name) DO NOTHING`,
			it.Name,
			it.ShortName,
			it.Description,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
