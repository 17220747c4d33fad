package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/groups/groups/controller"
	"mutualaid_backend/internals/helpers/placeholder"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func GroupRoutes(router fiber.Router, db *gorm.DB, gen *placeholder.Generator) {
	ctrl := controller.NewGroupController(db, gen)
	auth := authMiddleware.AuthMiddleware(db)
	adminOnly := authMiddleware.RequireAdmin("Only admins can manage groups")

	groups := router.Group("/groups")
	groups.Get("/", ctrl.ListGroups)
	groups.Post("/", auth, adminOnly, ctrl.CreateGroup)
	groups.Get("/:id_group", ctrl.GetGroup)
	groups.Put("/:id_group", auth, adminOnly, ctrl.UpdateGroup)
	groups.Delete("/:id_group", auth, adminOnly, ctrl.DeleteGroup)
}
