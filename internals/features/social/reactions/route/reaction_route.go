package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/social/parent"
	"mutualaid_backend/internals/features/social/reactions/controller"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func ReactionRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReactionController(db)
	auth := authMiddleware.AuthMiddleware(db)

	for _, kind := range []parent.Kind{parent.KindRequest, parent.KindSupport} {
		path := "/" + kind.String() + "s/:" + kind.ParamName() + "/reactions"
		router.Get(path, ctrl.ListReactions(kind))
		router.Post(path, auth, ctrl.React(kind))
		router.Delete(path, auth, ctrl.Unreact(kind))
	}
}
