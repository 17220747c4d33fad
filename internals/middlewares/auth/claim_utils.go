package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileModel "mutualaid_backend/internals/features/users/profiles/model"
	helper "mutualaid_backend/internals/helpers"
)

const missingTokenMessage = "Request header 'Authorization' does not exist or does not contain authentication token."

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", helper.ErrUnauthenticated(missingTokenMessage)
	}

	// tolerate repeated spaces and any casing of the scheme
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", helper.ErrUnauthenticated(missingTokenMessage)
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", helper.ErrUnauthenticated(missingTokenMessage)
	}
	return tok, nil
}

// ensureUserActive rejects deactivated or deleted profiles. A caller without a
// profile yet passes, so POST /profiles stays reachable.
func ensureUserActive(ctx context.Context, db *gorm.DB, username string) error {
	var p profileModel.ProfileModel
	err := db.WithContext(ctx).
		Select("username", "is_deactivated", "is_deleted").
		Where("username = ?", username).
		Take(&p).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return helper.ErrInternal(err)
	case !p.Active():
		return helper.ErrForbidden("Account has been deactivated")
	}
	return nil
}
