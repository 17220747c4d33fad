package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/aid/supports/controller"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func SupportRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSupportController(db)
	auth := authMiddleware.AuthMiddleware(db)

	router.Get("/requests/:id_request/supports", ctrl.ListSupports)
	router.Post("/requests/:id_request/supports", auth, ctrl.CreateSupport)

	supports := router.Group("/supports")
	supports.Get("/:id_support", ctrl.GetSupport)
	supports.Put("/:id_support", auth, ctrl.UpdateSupport)
	supports.Delete("/:id_support", auth, ctrl.DeleteSupport)
}
