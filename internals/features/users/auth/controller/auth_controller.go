package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mutualaid_backend/internals/configs"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Me returns the identity carried by the caller's token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	username, isAdmin, _ := authHelper.CurrentUser(c)
	return helper.JsonOK(c, fiber.Map{
		"username":   username,
		"is_admin":   isAdmin,
		"expires_at": authHelper.TokenExpiry(c),
	})
}

// Logout revokes the caller's token and purges blacklist rows that expired.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()
	raw := authHelper.RawToken(c)

	exp := authHelper.TokenExpiry(c)
	if exp.IsZero() {
		exp = time.Now().Add(24 * time.Hour)
	}
	if err := authHelper.Revoke(ctx, ac.DB, raw, configs.JWTSecret, exp); err != nil {
		return helper.ErrInternal(err)
	}

	if n, err := authHelper.PurgeExpired(ctx, ac.DB); err != nil {
		log.Warnf("purge token blacklist: %v", err)
	} else if n > 0 {
		log.Infof("purged %d expired blacklisted tokens", n)
	}

	return helper.JsonOK(c, fiber.Map{"message": "Logged out"})
}
