package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "mutualaid_backend/internals/features/users/auth/route"
	profileRoute "mutualaid_backend/internals/features/users/profiles/route"
)

func UserRoutes(router fiber.Router, d Deps) {
	authRoute.AuthRoutes(router, d.DB)
	profileRoute.ProfileRoutes(router, d.DB, d.Placeholder)
}
