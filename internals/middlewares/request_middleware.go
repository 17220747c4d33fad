package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	log "github.com/sirupsen/logrus"

	helper "mutualaid_backend/internals/helpers"
)

// RequestTimeout matches statement_timeout of the database DSN.
const RequestTimeout = 5 * time.Second

// RequestContext sets X-Request-ID, a timeout-bound user context and logs timing.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), RequestTimeout)
		defer cancel()
		c.SetUserContext(ctx)

		// ErrorHandler writes the response after the chain returns
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = helper.StatusOf(err)
		}
		log.WithFields(log.Fields{
			"reqid":  id,
			"method": c.Method(),
			"path":   c.OriginalURL(),
			"status": status,
			"dur":    time.Since(start).String(),
		}).Debug("request")
		return err
	}
}
