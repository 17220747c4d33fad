package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"mutualaid_backend/internals/configs"
	"mutualaid_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the stack shared by every route, in order.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	if cfg.RateLimitMax > 0 {
		app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	}
}
