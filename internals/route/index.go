package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mutualaid_backend/internals/configs"
	"mutualaid_backend/internals/helpers/placeholder"
	"mutualaid_backend/internals/helpers/storage"
	routeDetails "mutualaid_backend/internals/route/details"
)

var startTime time.Time

const placeholderFolder = "placeholders"

func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.Storage, cfg *configs.Config) {
	startTime = time.Now()

	d := routeDetails.Deps{
		DB:              db,
		Store:           store,
		Placeholder:     placeholder.NewGenerator(store, placeholderFolder),
		MaxUploadBytes:  int64(cfg.MaxUploadSizeMB) << 20,
		UploadRateLimit: cfg.UploadRateLimitMax,
	}

	BaseRoutes(app, db)

	log.Info("mounting user routes")
	routeDetails.UserRoutes(app, d)

	log.Info("mounting group routes")
	routeDetails.GroupRoutes(app, d)

	log.Info("mounting aid routes")
	routeDetails.AidRoutes(app, d)

	log.Info("mounting social routes")
	routeDetails.SocialRoutes(app, d)

	log.Info("mounting media routes")
	routeDetails.MediaRoutes(app, d)
}
