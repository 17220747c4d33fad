package details

import (
	"github.com/gofiber/fiber/v2"

	requestRoute "mutualaid_backend/internals/features/aid/requests/route"
	supportRoute "mutualaid_backend/internals/features/aid/supports/route"
)

func AidRoutes(router fiber.Router, d Deps) {
	requestRoute.RequestRoutes(router, d.DB)
	supportRoute.SupportRoutes(router, d.DB)
}
