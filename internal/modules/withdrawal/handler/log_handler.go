package handler

import (
	"wdr/internal/modules/withdrawal/dto"
	"wdr/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// LogEvent handles POST /api/log: client-side events are written to the audit
// log as-is.
func LogEvent(c *fiber.Ctx) error {
	var req dto.LogInput
	_ = decodeJSON(c, &req)
	if req.Event == "" {
		req.Event = "unknown"
	}
	if req.Data == nil {
		req.Data = map[string]any{}
	}

	logger.WithField("event", req.Event).Infof("[LOG] %v", req.Data)
	logger.WriteLogToFile("success", "client."+req.Event, req.Data, nil)

	return c.JSON(fiber.Map{"status": "logged"})
}
