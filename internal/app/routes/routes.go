package routes

import (
	"path/filepath"

	"wdr/internal/app/factory"
	"wdr/internal/config"

	"github.com/gofiber/fiber/v2"
)

func NewRoutes(app *fiber.App, container *factory.Container, cfg *config.Config) {
	NewHealthzRoutes(app)

	routerAPI := app.Group("/api")
	NewWithdrawalAPIRoutes(routerAPI, container.WithdrawalHandler, cfg.Admin.Key)

	NewWithdrawalPageRoutes(app, container.WithdrawalHandler, cfg.Admin.Key)

	// Landing page and static assets
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.App.PublicDir, "withdraw.html"))
	})
	app.Static("/", cfg.App.PublicDir)
}
