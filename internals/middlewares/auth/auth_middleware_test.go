package auth_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"mutualaid_backend/internals/configs"
	helper "mutualaid_backend/internals/helpers"
	authHelper "mutualaid_backend/internals/helpers/auth"
	authMiddleware "mutualaid_backend/internals/middlewares/auth"
	"mutualaid_backend/internals/testutil"
)

func newGuardedApp(t *testing.T) (*fiber.App, *testutil.App) {
	t.Helper()
	env := testutil.NewApp(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/me", authMiddleware.AuthMiddleware(env.DB), func(c *fiber.Ctx) error {
		u, admin, _ := authHelper.CurrentUser(c)
		return c.JSON(fiber.Map{"username": u, "is_admin": admin})
	})
	app.Get("/admin", authMiddleware.AuthMiddleware(env.DB), authMiddleware.OnlyAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, env
}

func get(t *testing.T, app *fiber.App, path, header string) testutil.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return (&testutil.App{App: app}).Send(t, req)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	app, _ := newGuardedApp(t)
	expired, _ := authHelper.IssueToken("alice", false, testutil.Secret, -time.Minute)
	forged, _ := authHelper.IssueToken("alice", false, "not-the-secret", time.Hour)

	cases := []struct {
		name, header, msg string
	}{
		{"missing", "", "Request header 'Authorization' does not exist or does not contain authentication token."},
		{"wrong scheme", "Basic abc", "Request header 'Authorization' does not exist or does not contain authentication token."},
		{"garbage", "Bearer abc.def", "Invalid token"},
		{"forged", "Bearer " + forged, "Invalid token"},
		{"expired", "Bearer " + expired, "Token expired"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := get(t, app, "/me", tc.header).Expect(t, fiber.StatusUnauthorized)
			if got := r.Error(t); got != tc.msg {
				t.Fatalf("error = %q, want %q", got, tc.msg)
			}
		})
	}
}

func TestAuthMiddlewareAccepts(t *testing.T) {
	app, _ := newGuardedApp(t)

	// no profile yet is fine; scheme casing and quotes are tolerated
	r := get(t, app, "/me", `bearer   "`+testutil.Token(t, "alice", false)+`"`).Expect(t, fiber.StatusOK)
	if m := r.Map(t); m["username"] != "alice" || m["is_admin"] != false {
		t.Fatalf("locals = %v", m)
	}
}

func TestAuthMiddlewareInactiveAndRevoked(t *testing.T) {
	app, env := newGuardedApp(t)

	p := testutil.SeedProfile(t, env.DB, "bob", false)
	tok := testutil.Token(t, "bob", false)
	get(t, app, "/me", "Bearer "+tok).Expect(t, fiber.StatusOK)

	env.DB.Model(&p).Update("is_deactivated", true)
	r := get(t, app, "/me", "Bearer "+tok).Expect(t, fiber.StatusForbidden)
	if r.Error(t) != "Account has been deactivated" {
		t.Fatalf("error = %q", r.Error(t))
	}

	alice := testutil.Token(t, "alice", false)
	if err := authHelper.Revoke(context.Background(), env.DB, alice, configs.JWTSecret, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	r = get(t, app, "/me", "Bearer "+alice).Expect(t, fiber.StatusUnauthorized)
	if r.Error(t) != "Token revoked" {
		t.Fatalf("error = %q", r.Error(t))
	}
}

func TestOnlyAdmin(t *testing.T) {
	app, _ := newGuardedApp(t)

	r := get(t, app, "/admin", "Bearer "+testutil.Token(t, "alice", false)).Expect(t, fiber.StatusForbidden)
	if r.Error(t) != "User must be admin" {
		t.Fatalf("error = %q", r.Error(t))
	}
	get(t, app, "/admin", "Bearer "+testutil.Token(t, "root", true)).Expect(t, fiber.StatusNoContent)
}
