package middlewares_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	helper "mutualaid_backend/internals/helpers"
	"mutualaid_backend/internals/middlewares"
)

func TestRequestContextLogsFinalStatus(t *testing.T) {
	hook := test.NewGlobal()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	t.Cleanup(func() { log.SetLevel(level) })

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(middlewares.RequestContext())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/missing", func(c *fiber.Ctx) error { return helper.ErrNotFound("nothing here") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.ErrTeapot })

	cases := map[string]int{
		"/ok":      fiber.StatusNoContent,
		"/missing": fiber.StatusNotFound,
		"/boom":    fiber.StatusTeapot,
	}
	for path, want := range cases {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if resp.StatusCode != want {
			t.Fatalf("%s: response status %d, want %d", path, resp.StatusCode, want)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatalf("%s: no X-Request-ID", path)
		}

		var logged any
		for _, e := range hook.AllEntries() {
			if e.Message == "request" {
				logged = e.Data["status"]
			}
		}
		if logged != want {
			t.Fatalf("%s: logged status %v, want %d", path, logged, want)
		}
	}
}
