package main

import (
	"context"
	"flag"
	"log"
	"time"

	"placement-intel/internal/app"
	"placement-intel/internal/config"
	"placement-intel/internal/database/migration"
	"placement-intel/internal/database/seeder"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "directory with versioned SQL migrations")
	skipSeed := flag.Bool("skip-seed", false, "apply migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: *migrationsDir}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied")

	if *skipSeed {
		return
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer seedCancel()
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(seedCtx, c.DB); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeders applied")
}
