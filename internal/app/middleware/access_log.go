package middleware

import (
	"io"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
)

// AccessLog is a one-line-per-request log in the spirit of morgan "tiny".
func AccessLog(out io.Writer) fiber.Handler {
	return fiberlogger.New(fiberlogger.Config{
		Format:     "${method} ${path} ${status} ${bytesSent} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     out,
	})
}
