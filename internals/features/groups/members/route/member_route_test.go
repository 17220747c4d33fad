package route_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"mutualaid_backend/internals/testutil"
)

func setup(t *testing.T) *testutil.App {
	t.Helper()
	app := testutil.NewApp(t)
	testutil.SeedProfile(t, app.DB, "alice", false)
	testutil.SeedProfile(t, app.DB, "bob", false)
	app.Do(t, "POST", "/groups", testutil.Token(t, "root", true), map[string]any{
		"name": "District 1", "description": "d",
	}).Expect(t, fiber.StatusCreated)
	return app
}

func TestJoinGroup(t *testing.T) {
	app := setup(t)
	alice := testutil.Token(t, "alice", false)

	m := app.Do(t, "POST", "/groups/1/users", alice, map[string]any{"as_role": true}).
		Expect(t, fiber.StatusCreated).Map(t)
	if m["username"] != "alice" || m["id_group"] != float64(1) || m["as_role"] != true {
		t.Fatalf("member = %v", m)
	}

	r := app.Do(t, "POST", "/groups/1/users", alice, map[string]any{"as_role": false}).Expect(t, fiber.StatusBadRequest)
	if r.Error(t) != "User alice is already a member of this group" {
		t.Fatalf("error = %q", r.Error(t))
	}

	detail := app.Do(t, "GET", "/groups/1", "", nil).Expect(t, fiber.StatusOK).Map(t)
	if detail["total_members"] != float64(1) {
		t.Fatalf("total_members = %v", detail["total_members"])
	}
}

func TestJoinGroupRejects(t *testing.T) {
	app := setup(t)
	bob := testutil.Token(t, "bob", false)

	r := app.Do(t, "POST", "/groups/1/users", bob, map[string]any{}).Expect(t, fiber.StatusBadRequest)
	if r.Error(t) != "Request body must contain 'as_role' field" {
		t.Fatalf("error = %q", r.Error(t))
	}

	r = app.Do(t, "POST", "/groups/1/users", testutil.Token(t, "root", true), map[string]any{"as_role": true}).
		Expect(t, fiber.StatusForbidden)
	if r.Error(t) != "Admin can not join groups" {
		t.Fatalf("error = %q", r.Error(t))
	}

	r = app.Do(t, "POST", "/groups/9/users", bob, map[string]any{"as_role": true}).Expect(t, fiber.StatusNotFound)
	if r.Error(t) != "Group ID 9 does not exist" {
		t.Fatalf("error = %q", r.Error(t))
	}

	app.Do(t, "DELETE", "/groups/1", testutil.Token(t, "root", true), nil).Expect(t, fiber.StatusOK)
	r = app.Do(t, "POST", "/groups/1/users", bob, map[string]any{"as_role": true}).Expect(t, fiber.StatusBadRequest)
	if r.Error(t) != "Group ID 1 has been deleted" {
		t.Fatalf("error = %q", r.Error(t))
	}
}

func TestListMembers(t *testing.T) {
	app := setup(t)
	app.Do(t, "POST", "/groups/1/users", testutil.Token(t, "alice", false), map[string]any{"as_role": true}).
		Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/groups/1/users", testutil.Token(t, "bob", false), map[string]any{"as_role": false}).
		Expect(t, fiber.StatusCreated)

	var all []map[string]any
	app.Do(t, "GET", "/groups/1/users?field=username&sort=asc", "", nil).Expect(t, fiber.StatusOK).Decode(t, &all)
	if len(all) != 2 || all[0]["username"] != "alice" {
		t.Fatalf("members = %v", all)
	}
	profile, _ := all[0]["profile"].(map[string]any)
	if profile["first_name"] != "First" {
		t.Fatalf("profile not preloaded: %v", all[0])
	}

	m := app.Do(t, "GET", "/groups/1/users?search=bo&page=1", "", nil).Expect(t, fiber.StatusOK).Map(t)
	if m["total_members"] != float64(1) {
		t.Fatalf("paged = %v", m)
	}

	app.Do(t, "GET", "/groups/5/users", "", nil).Expect(t, fiber.StatusNotFound)
}
