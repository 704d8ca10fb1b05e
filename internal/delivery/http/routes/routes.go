package routes

import (
	"log"

	"placement-intel/internal/database"
	"placement-intel/internal/delivery/http/handler"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler

	db     database.DB
	cache  usecase.SnapshotCache
	logger *log.Logger
}

func NewRegistry(db database.DB, cache usecase.SnapshotCache, logger *log.Logger) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.db, r.cache, r.logger)
}
