package routes_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	memberModel "mutualaid_backend/internals/features/groups/members/model"
	"mutualaid_backend/internals/testutil"
)

func TestHealth(t *testing.T) {
	app := testutil.NewApp(t)
	m := app.Do(t, "GET", "/health", "", nil).Expect(t, fiber.StatusOK).Map(t)
	if m["status"] != "OK" || m["database"] != "Connected" {
		t.Fatalf("health = %v", m)
	}
	if _, ok := m["system"].(map[string]any); !ok {
		t.Fatalf("health system = %v", m["system"])
	}
}

// TestSupportConfirmationFlow walks a request from posting to a confirmed support.
func TestSupportConfirmationFlow(t *testing.T) {
	app := testutil.NewApp(t)
	testutil.SeedProfile(t, app.DB, "a", false)
	testutil.SeedProfile(t, app.DB, "b", false)
	admin := testutil.Token(t, "admin", true)
	a, b := testutil.Token(t, "a", false), testutil.Token(t, "b", false)

	g := app.Do(t, "POST", "/groups", admin, map[string]any{"name": "G1", "description": "first group"}).
		Expect(t, fiber.StatusCreated).Map(t)
	if g["id_group"] != float64(1) {
		t.Fatalf("group = %v", g)
	}

	app.Do(t, "POST", "/groups/1/users", a, map[string]any{"as_role": false}).Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/groups/1/users", b, map[string]any{"as_role": true}).Expect(t, fiber.StatusCreated)

	// a second join is a conflict and leaves one row
	app.Do(t, "POST", "/groups/1/users", a, map[string]any{"as_role": true}).Expect(t, fiber.StatusBadRequest)
	var n int64
	app.DB.Model(&memberModel.MemberModel{}).Where("username = ? AND id_group = ?", "a", 1).Count(&n)
	if n != 1 {
		t.Fatalf("member rows for a = %d", n)
	}

	app.Do(t, "POST", "/groups/1/requests", a, map[string]any{"content": "R1"}).Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/requests/1/supports", b, map[string]any{"content": "S1"}).Expect(t, fiber.StatusCreated)

	r1 := app.Do(t, "GET", "/requests/1", "", nil).Expect(t, fiber.StatusOK).Map(t)
	if r1["total_supports"] != float64(1) {
		t.Fatalf("total_supports = %v", r1["total_supports"])
	}

	s1 := app.Do(t, "PUT", "/supports/1", a, map[string]any{"is_confirmed": true}).Expect(t, fiber.StatusOK).Map(t)
	if s1["is_confirmed"] != true {
		t.Fatalf("support = %v", s1)
	}

	app.Do(t, "PUT", "/supports/1", b, map[string]any{"is_confirmed": false}).Expect(t, fiber.StatusForbidden)
	app.Do(t, "PUT", "/supports/1", b, map[string]any{"content": "S1, two bags"}).Expect(t, fiber.StatusOK)

	s1 = app.Do(t, "GET", "/supports/1", "", nil).Expect(t, fiber.StatusOK).Map(t)
	if s1["is_confirmed"] != true || s1["content"] != "S1, two bags" {
		t.Fatalf("final support = %v", s1)
	}
}
