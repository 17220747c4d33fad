package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/users/profiles/controller"
	"mutualaid_backend/internals/helpers/placeholder"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func ProfileRoutes(router fiber.Router, db *gorm.DB, gen *placeholder.Generator) {
	ctrl := controller.NewProfileController(db, gen)
	auth := authMiddleware.AuthMiddleware(db)

	profiles := router.Group("/profiles")
	profiles.Get("/", auth, authMiddleware.OnlyAdmin(), ctrl.ListProfiles)
	profiles.Post("/", auth, ctrl.CreateProfile)
	profiles.Get("/:username", ctrl.GetProfile)
	profiles.Put("/:username", auth, ctrl.UpdateProfile)
	profiles.Delete("/:username", auth, ctrl.DeleteProfile)
}
