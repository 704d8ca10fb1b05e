package v1

import (
	"log"

	"placement-intel/internal/database"
	"placement-intel/internal/delivery/http/handler"
	"placement-intel/internal/repository"
	"placement-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, db database.DB, cache usecase.SnapshotCache, logger *log.Logger) {
	if r == nil {
		return
	}

	catalogRepo := repository.NewPostgresSkillCatalogRepository(db)
	stagingRepo := repository.NewPostgresProficiencyStagingRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	hiringRepo := repository.NewPostgresHiringRoundRepository(db)
	innovationRepo := repository.NewPostgresInnovationProjectRepository(db)

	analyticsUC := usecase.NewAnalyticsUsecase(catalogRepo, stagingRepo, cache, logger)
	companyUC := usecase.NewCompanyUsecase(companyRepo, logger)
	hiringUC := usecase.NewHiringUsecase(hiringRepo, logger)
	innovationUC := usecase.NewInnovationUsecase(innovationRepo, logger)

	handler.NewAnalyticsHandler(analyticsUC).RegisterRoutes(r)
	handler.NewCompanyHandler(companyUC).RegisterRoutes(r)
	handler.NewHiringHandler(hiringUC).RegisterRoutes(r)
	handler.NewInnovationHandler(innovationUC).RegisterRoutes(r)
}
