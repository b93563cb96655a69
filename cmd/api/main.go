package main

import (
	"context"
	"time"

	"wdr/internal/app"
	"wdr/internal/config"
	"wdr/internal/infrastructure/cache"
	"wdr/pkg/graceful"
	"wdr/pkg/logger"

	"github.com/jpillora/overseer"
	"github.com/jpillora/overseer/fetcher"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	overseer.Run(overseer.Config{
		Program:       program,
		Address:       ":" + cfg.App.Port,
		Fetcher:       &fetcher.File{Path: cfg.App.BinFilePath, Interval: 5 * time.Second},
		Debug:         cfg.App.Env == "development",
		RestartSignal: graceful.RestartSignal,
	})
}

func program(state overseer.State) {
	// Cancelled by OS signal or overseer restart
	ctx, cancel := graceful.ShutdownContext(context.Background(), "api")
	defer cancel()

	cfg := config.Load()

	// Logging
	logger.SetLevel(cfg.App.LogLevel)
	logger.InitLogFile(cfg.App.LogFilePath)

	if cfg.Admin.Key == "" {
		logger.Warn("⚠️ ADMIN_KEY is not set, admin pages are locked")
	}

	// Event stream (optional)
	var rdb redis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := cache.ConnectRedis(ctx, *cfg.Redis, cfg.App.Name)
		if err != nil {
			errorDetails := err.Error()
			logger.WriteLogToFile("failed", "cache.ConnectRedis", map[string]any{
				"redis_host": cfg.Redis.Host,
			}, &errorDetails)
			logger.Fatal("❌ Failed to connect redis: " + errorDetails)
		}
		rdb = client
		logger.Infof("✅ Connected to redis, publishing events to %s", cfg.Redis.Stream)
	}

	application, err := app.NewApp(cfg, rdb)
	if err != nil {
		logger.Fatal("❌ Failed to build app: " + err.Error())
	}
	go application.Start(state.Listener)

	// Block until terminated
	<-ctx.Done()

	logger.Info("🛑 Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("⚠️ HTTP shutdown: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	logger.Info("✅ Cleanup done. Exiting.")
}
