package routes

import (
	"log"

	"placement-intel/internal/database"
	v1 "placement-intel/internal/delivery/http/routes/v1"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, db database.DB, cache usecase.SnapshotCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, db, cache, logger)
}
