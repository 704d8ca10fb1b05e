package seeder

import (
	"context"

	"placement-intel/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
