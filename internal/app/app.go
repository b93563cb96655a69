package app

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"wdr/internal/app/factory"
	"wdr/internal/app/middleware"
	"wdr/internal/app/routes"
	"wdr/internal/config"
	"wdr/pkg/logger"
	"wdr/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Fiber     *fiber.App
	Config    *config.Config
	Container *factory.Container
	accessLog io.Closer
}

// NewApp builds the Fiber app. rdb may be nil when the event stream is disabled.
func NewApp(cfg *config.Config, rdb redis.UniversalClient) (*App, error) {
	container, err := factory.Build(cfg, rdb)
	if err != nil {
		return nil, err
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		Immutable:             true, // request values outlive the request in the record store
		ErrorHandler:          errorHandler,
	})

	accessLog := logger.Writer()
	fiberApp.Use(recover.New())
	fiberApp.Use(middleware.AccessLog(accessLog))
	fiberApp.Use(cors.New())

	app := &App{Fiber: fiberApp, Config: cfg, Container: container, accessLog: accessLog}

	routes.NewRoutes(fiberApp, container, cfg)

	return app, nil
}

func (a *App) Start(listener net.Listener) {
	configApp := a.Config.App

	logger.Infof("✅ %s server started on port: %s", configApp.Name, configApp.Port)

	if err := a.Fiber.Listener(listener); err != nil {
		errDetail := err.Error()
		logger.WriteLogToFile("failed", "app.Start", map[string]any{
			"app_name": configApp.Name,
			"app_port": configApp.Port,
		}, &errDetail)
		logger.Fatal("❌ Failed to start server: " + err.Error())
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.Fiber.ShutdownWithContext(ctx)
	_ = a.accessLog.Close()
	return err
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.WithField("path", c.Path()).Errorf("❌ request failed: %v", err)
	}

	msg := err.Error()
	if code == fiber.StatusNotFound {
		msg = "Not found"
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return response.WriteError(c, code, msg)
	}
	return c.Status(code).SendString(msg)
}
