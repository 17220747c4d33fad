package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/aid/requests/controller"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func RequestRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRequestController(db)
	auth := authMiddleware.AuthMiddleware(db)

	router.Get("/groups/:id_group/requests", ctrl.ListGroupRequests)
	router.Post("/groups/:id_group/requests", auth, ctrl.CreateRequest)
	router.Get("/profiles/:username/requests", ctrl.ListProfileRequests)

	requests := router.Group("/requests")
	requests.Get("/:id_request", ctrl.GetRequest)
	requests.Put("/:id_request", auth, ctrl.UpdateRequest)
	requests.Delete("/:id_request", auth, ctrl.DeleteRequest)
}
