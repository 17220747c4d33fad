package details

import (
	"github.com/gofiber/fiber/v2"

	commentRoute "mutualaid_backend/internals/features/social/comments/route"
	reactionRoute "mutualaid_backend/internals/features/social/reactions/route"
)

func SocialRoutes(router fiber.Router, d Deps) {
	commentRoute.CommentRoutes(router, d.DB)
	reactionRoute.ReactionRoutes(router, d.DB)
}
