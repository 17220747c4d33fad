package route

import (
	"github.com/gofiber/fiber/v2"

	"mutualaid_backend/internals/features/media/upload/controller"
	"mutualaid_backend/internals/helpers/storage"
	"mutualaid_backend/internals/middlewares"
)

func UploadRoutes(router fiber.Router, store storage.Storage, maxBytes int64, rateLimit int) {
	ctrl := controller.NewUploadController(store, maxBytes)
	router.Post("/upload", middlewares.UploadRateLimiter(rateLimit), ctrl.UploadImage)
}
