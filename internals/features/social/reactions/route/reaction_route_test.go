package route_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"mutualaid_backend/internals/testutil"
)

func TestReactions(t *testing.T) {
	app := testutil.NewApp(t)
	testutil.SeedProfile(t, app.DB, "alice", false)
	testutil.SeedProfile(t, app.DB, "bob", false)
	alice, bob := testutil.Token(t, "alice", false), testutil.Token(t, "bob", false)

	app.Do(t, "POST", "/groups", testutil.Token(t, "root", true), map[string]any{"name": "G", "description": "d"}).
		Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/groups/1/users", alice, map[string]any{"as_role": true}).Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/groups/1/users", bob, map[string]any{"as_role": false}).Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/groups/1/requests", alice, map[string]any{"content": "Need rice"}).Expect(t, fiber.StatusCreated)
	app.Do(t, "POST", "/requests/1/supports", bob, map[string]any{"content": "Here"}).Expect(t, fiber.StatusCreated)

	m := app.Do(t, "POST", "/requests/1/reactions", bob, nil).Expect(t, fiber.StatusCreated).Map(t)
	if m["username"] != "bob" || m["id_request"] != float64(1) || m["object_type"] != float64(0) {
		t.Fatalf("reaction = %v", m)
	}
	r := app.Do(t, "POST", "/requests/1/reactions", bob, nil).Expect(t, fiber.StatusBadRequest)
	if r.Error(t) != "User bob already reacted to this request" {
		t.Fatalf("error = %q", r.Error(t))
	}

	// request 1 and support 1 share an id but not their reactions
	app.Do(t, "POST", "/supports/1/reactions", bob, nil).Expect(t, fiber.StatusCreated)
	r = app.Do(t, "POST", "/supports/1/reactions", bob, nil).Expect(t, fiber.StatusBadRequest)
	if r.Error(t) != "User bob already reacted to this support" {
		t.Fatalf("error = %q", r.Error(t))
	}
	app.Do(t, "POST", "/requests/1/reactions", alice, nil).Expect(t, fiber.StatusCreated)

	var list struct {
		Reactions []map[string]any `json:"reactions"`
	}
	app.Do(t, "GET", "/requests/1/reactions", "", nil).Expect(t, fiber.StatusOK).Decode(t, &list)
	if len(list.Reactions) != 2 || list.Reactions[0]["username"] != "alice" {
		t.Fatalf("reactions = %v", list.Reactions)
	}

	app.Do(t, "DELETE", "/requests/1/reactions", bob, nil).Expect(t, fiber.StatusOK)
	r = app.Do(t, "DELETE", "/requests/1/reactions", bob, nil).Expect(t, fiber.StatusNotFound)
	if r.Error(t) != "User bob has not reacted to this request" {
		t.Fatalf("error = %q", r.Error(t))
	}
	// reacting again after removal is allowed
	app.Do(t, "POST", "/requests/1/reactions", bob, nil).Expect(t, fiber.StatusCreated)

	d := app.Do(t, "GET", "/supports/1", "", nil).Expect(t, fiber.StatusOK).Map(t)
	if d["total_reactions"] != float64(1) {
		t.Fatalf("support reactions = %v", d["total_reactions"])
	}

	r = app.Do(t, "POST", "/requests/3/reactions", bob, nil).Expect(t, fiber.StatusNotFound)
	if r.Error(t) != "Request ID 3 does not exist" {
		t.Fatalf("error = %q", r.Error(t))
	}
	app.Do(t, "POST", "/requests/1/reactions", "", nil).Expect(t, fiber.StatusUnauthorized)
}
