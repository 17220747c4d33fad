package route_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	authModel "mutualaid_backend/internals/features/users/auth/model"
	authHelper "mutualaid_backend/internals/helpers/auth"
	"mutualaid_backend/internals/testutil"
)

func TestMe(t *testing.T) {
	app := testutil.NewApp(t)

	m := app.Do(t, "GET", "/auth/me", testutil.Token(t, "alice", true), nil).Expect(t, fiber.StatusOK).Map(t)
	if m["username"] != "alice" || m["is_admin"] != true || m["expires_at"] == nil {
		t.Fatalf("me = %v", m)
	}
	app.Do(t, "GET", "/auth/me", "", nil).Expect(t, fiber.StatusUnauthorized)
}

func TestLogout(t *testing.T) {
	app := testutil.NewApp(t)
	tok := testutil.Token(t, "alice", false)

	// a stale row is purged on the next logout
	stale := authModel.TokenBlacklist{Token: "stale", ExpiredAt: time.Now().Add(-time.Hour)}
	if err := app.DB.Create(&stale).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	app.Do(t, "POST", "/auth/logout", tok, nil).Expect(t, fiber.StatusOK)

	r := app.Do(t, "GET", "/auth/me", tok, nil).Expect(t, fiber.StatusUnauthorized)
	if r.Error(t) != "Token revoked" {
		t.Fatalf("error = %q", r.Error(t))
	}

	var rows []authModel.TokenBlacklist
	app.DB.Find(&rows)
	if len(rows) != 1 || rows[0].Token != authHelper.HashToken(tok, testutil.Secret) {
		t.Fatalf("blacklist = %+v", rows)
	}
}
