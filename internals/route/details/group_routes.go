package details

import (
	"github.com/gofiber/fiber/v2"

	groupRoute "mutualaid_backend/internals/features/groups/groups/route"
	memberRoute "mutualaid_backend/internals/features/groups/members/route"
)

func GroupRoutes(router fiber.Router, d Deps) {
	groupRoute.GroupRoutes(router, d.DB, d.Placeholder)
	memberRoute.MemberRoutes(router, d.DB)
}
