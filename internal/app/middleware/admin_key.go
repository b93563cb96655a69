package middleware

import (
	"crypto/subtle"
	"strings"

	"wdr/pkg/helper"
	"wdr/pkg/logger"
	"wdr/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const HeaderAdminKey = "X-Admin-Key"

// AdminKey admits requests whose ?key= (or X-Admin-Key header) equals the
// configured secret. An empty secret rejects everything.
func AdminKey(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Query("key")
		if supplied == "" {
			supplied = c.Get(HeaderAdminKey)
		}

		if secret != "" && subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) == 1 {
			return c.Next()
		}

		logger.WriteLogToFile("failed", "middleware.AdminKey", map[string]any{
			"path":      c.Path(),
			"source_ip": helper.ClientIP(c.Get(fiber.HeaderXForwardedFor), c.IP()),
		}, nil)

		if strings.HasPrefix(c.Path(), "/api/") {
			return response.WriteError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}
}
