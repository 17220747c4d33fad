package helper

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func runWithBody(t *testing.T, body string, h fiber.Handler) error {
	t.Helper()
	var got error
	app := fiber.New()
	app.Put("/", func(c *fiber.Ctx) error {
		got = h(c)
		return nil
	})
	req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return got
}

func TestCheckFields(t *testing.T) {
	allowed := []string{"content", "images"}
	err := runWithBody(t, `{"content":"x","images":[]}`, func(c *fiber.Ctx) error {
		return CheckFields(c, allowed...)
	})
	if err != nil {
		t.Fatalf("allowed keys rejected: %v", err)
	}

	err = runWithBody(t, `{"is_confirmed":true,"content":"x","aaa":1}`, func(c *fiber.Ctx) error {
		return CheckFields(c, allowed...)
	})
	status, msg := appStatus(t, err)
	if status != 403 || msg != "Field 'aaa' can not be updated by this user" {
		t.Fatalf("got %d %q", status, msg)
	}

	err = runWithBody(t, `not json`, func(c *fiber.Ctx) error {
		return CheckFields(c, allowed...)
	})
	if status, _ := appStatus(t, err); status != 400 {
		t.Fatalf("invalid body status = %d", status)
	}
}

func TestParseBodyValidation(t *testing.T) {
	type body struct {
		URL string `json:"url" validate:"required,http_url"`
	}
	err := runWithBody(t, `{"url":"ftp://x"}`, func(c *fiber.Ctx) error {
		var b body
		return ParseBody(c, &b)
	})
	_, msg := appStatus(t, err)
	if msg != "url must be a valid http(s) URL" {
		t.Fatalf("message = %q", msg)
	}
}

func TestCheckNotEmpty(t *testing.T) {
	ok, blank := "x", "  "
	if err := CheckNotEmpty(&ok, nil); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	_, msg := appStatus(t, CheckNotEmpty(&ok, &blank))
	if msg != "Data has empty fields" {
		t.Fatalf("message = %q", msg)
	}
}
