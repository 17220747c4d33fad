package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mutualaid_backend/internals/features/social/comments/controller"
	"mutualaid_backend/internals/features/social/parent"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
)

func CommentRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCommentController(db)
	auth := authMiddleware.AuthMiddleware(db)

	router.Get("/requests/:id_request/comments", ctrl.ListComments(parent.KindRequest))
	router.Post("/requests/:id_request/comments", auth, ctrl.CreateComment(parent.KindRequest))
	router.Get("/supports/:id_support/comments", ctrl.ListComments(parent.KindSupport))
	router.Post("/supports/:id_support/comments", auth, ctrl.CreateComment(parent.KindSupport))

	comments := router.Group("/comments")
	comments.Get("/:id_comment", ctrl.GetComment)
	comments.Put("/:id_comment", auth, ctrl.UpdateComment)
	comments.Delete("/:id_comment", auth, ctrl.DeleteComment)
}
