package auth

import (
	"github.com/gofiber/fiber/v2"

	"mutualaid_backend/internals/constants"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(customForbiddenMessage string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = constants.MsgUserMustBeAdmin
	}
	return func(c *fiber.Ctx) error {
		_, isAdmin, ok := authHelper.CurrentUser(c)
		if !ok {
			return helper.ErrUnauthenticated(missingTokenMessage)
		}
		if !isAdmin {
			return helper.ErrForbidden("%s", customForbiddenMessage)
		}
		return c.Next()
	}
}

// OnlyAdmin is RequireAdmin with the default message.
func OnlyAdmin() fiber.Handler {
	return RequireAdmin("")
}
