package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/users/auth/controller"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func AuthRoutes(router fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := router.Group("/auth", authMiddleware.AuthMiddleware(db))
	auth.Get("/me", authController.Me)
	auth.Post("/logout", authController.Logout)
}
