package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// JsonError writes the error body shared by every endpoint: {"error": "<message>"}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = defaultStatusMessage(status)
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonPaged writes the paginated list shape:
//
//	{"current_page": 2, "total_pages": 5, "total_<name>": 42, "<name>": [...]}
func JsonPaged(c *fiber.Ctx, name string, p Page, total int64, items any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"current_page":  p.Current,
		"total_pages":   p.TotalPages,
		"total_" + name: total,
		name:            items,
	})
}

func defaultStatusMessage(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad Request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusInternalServerError:
		return fiber.ErrInternalServerError.Message
	default:
		return "Error"
	}
}

// JsonList writes a list result of ListQuery.Fetch: a bare array when page is nil.
func JsonList(c *fiber.Ctx, name string, page *Page, total int64, items any) error {
	if page == nil {
		return JsonOK(c, items)
	}
	return JsonPaged(c, name, *page, total, items)
}
