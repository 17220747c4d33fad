package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	LocUsername  = "username"
	LocIsAdmin   = "is_admin"
	LocRawToken  = "raw_token"
	LocExpiresAt = "token_exp"
)

// StoreClaims puts the verified identity into c.Locals.
func StoreClaims(c *fiber.Ctx, raw string, claims *Claims) {
	c.Locals(LocUsername, claims.Username)
	c.Locals(LocIsAdmin, claims.IsAdmin)
	c.Locals(LocRawToken, raw)
	if claims.ExpiresAt != nil {
		c.Locals(LocExpiresAt, claims.ExpiresAt.Time)
	}
}

// CurrentUser returns the authenticated caller; ok is false on public routes.
func CurrentUser(c *fiber.Ctx) (username string, isAdmin bool, ok bool) {
	username, _ = c.Locals(LocUsername).(string)
	isAdmin, _ = c.Locals(LocIsAdmin).(bool)
	return username, isAdmin, username != ""
}

func RawToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocRawToken).(string)
	return s
}

func TokenExpiry(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocExpiresAt).(time.Time)
	return t
}
