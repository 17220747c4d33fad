package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/groups/members/controller"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func MemberRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := router.Group("/groups/:id_group/users")
	members.Get("/", ctrl.ListMembers)
	members.Post("/", authMiddleware.AuthMiddleware(db), ctrl.JoinGroup)
}
