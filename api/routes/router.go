package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/igniteworks/cert-ignite-api/type/response"
)

func Init(router fiber.Router) {
	api := router.Group("api")

	api.Get("health", func(c *fiber.Ctx) error {
		return response.SendSuccess(c, "cert-ignite api is healthy")
	})

	SetupCertificateRoutes(api)
}
