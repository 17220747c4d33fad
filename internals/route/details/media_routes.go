package details

import (
	"github.com/gofiber/fiber/v2"

	uploadRoute "mutualaid_backend/internals/features/media/upload/route"
	"mutualaid_backend/internals/helpers/storage"
)

func MediaRoutes(app *fiber.App, d Deps) {
	if local, ok := d.Store.(*storage.LocalStorage); ok {
		app.Static(local.URLPrefix, local.Dir)
	}
	uploadRoute.UploadRoutes(app, d.Store, d.MaxUploadBytes, d.UploadRateLimit)
}
