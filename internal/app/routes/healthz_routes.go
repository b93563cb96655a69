package routes

import (
	"wdr/pkg/response"

	"github.com/gofiber/fiber/v2"
)

func NewHealthzRoutes(router fiber.Router) {
	router.Get("/health", func(c *fiber.Ctx) error {
		return response.WriteSuccess(c, fiber.StatusOK, nil)
	})
}
