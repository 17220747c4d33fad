package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mutualaid_backend/internals/configs"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
)

// AuthMiddleware requires a valid bearer token and stores the caller in c.Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Error("JWT_SECRET is empty")
			return helper.ErrInternal(authHelper.ErrMissingSecret)
		}

		revoked, err := authHelper.IsRevoked(c.UserContext(), db, tokenString, secret)
		if err != nil {
			return helper.ErrInternal(err)
		}
		if revoked {
			return helper.ErrUnauthenticated("Token revoked")
		}

		claims, err := authHelper.ParseToken(tokenString, secret)
		if err != nil {
			log.WithField("reqid", c.Locals("reqid")).Debugf("token rejected: %v", err)
			switch {
			case errors.Is(err, authHelper.ErrTokenExpired):
				return helper.ErrUnauthenticated("Token expired")
			case errors.Is(err, authHelper.ErrTokenNoUser):
				return helper.ErrUnauthenticated("Token has no username")
			default:
				return helper.ErrUnauthenticated("Invalid token")
			}
		}

		if err := ensureUserActive(c.UserContext(), db, claims.Username); err != nil {
			return err
		}

		authHelper.StoreClaims(c, tokenString, claims)
		return c.Next()
	}
}
