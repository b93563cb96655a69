package main

import (
	"context"
	"sync"
	"time"

	"wdr/internal/config"
	grpcserver "wdr/internal/grpc"
	"wdr/internal/infrastructure/cache"
	"wdr/internal/infrastructure/db"
	"wdr/internal/infrastructure/repository"
	"wdr/internal/worker"
	"wdr/pkg/graceful"
	"wdr/pkg/logger"

	"github.com/jpillora/overseer"
	"github.com/jpillora/overseer/fetcher"
)

func main() {
	cfg := config.Load()

	overseer.Run(overseer.Config{
		Program:       program,
		Address:       ":" + cfg.Worker.GRPCPort, // listener goes to the gRPC health server
		Fetcher:       &fetcher.File{Path: cfg.App.BinFilePath + "-worker", Interval: 5 * time.Second},
		Debug:         cfg.App.Env == "development",
		RestartSignal: graceful.RestartSignal,
	})
}

func program(state overseer.State) {
	ctx, cancel := graceful.ShutdownContext(context.Background(), "worker")
	defer cancel()

	cfg := config.Load()
	logger.SetLevel(cfg.App.LogLevel)
	logger.InitLogFile(cfg.App.LogFilePath)

	// --- DB connection ---
	conn, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("❌ Failed DB connect: " + err.Error())
	}
	logger.Infof("✅ DB connected (%s)", cfg.DB.Name)

	repo := repository.NewWithdrawalArchiveRepository(conn.DB)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatal("❌ Failed archive migration: " + err.Error())
	}

	// --- Redis connection ---
	rdb, err := cache.ConnectRedis(ctx, *cfg.Redis, cfg.App.Name+"-worker")
	if err != nil {
		logger.Fatal("❌ Redis connect: " + err.Error())
	}
	logger.Info("✅ Redis connected")

	// --- gRPC health ---
	health := grpcserver.NewHealthServer()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		health.Serve(ctx, state.Listener)
	}()

	// --- Stream consumers ---
	w := worker.NewArchiveWorker(rdb, repo, &worker.Options{
		Stream: cfg.Redis.Stream,
		Group:  cfg.Worker.Group,
	})
	for i := 0; i < cfg.Worker.WorkerCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w.Run(ctx, worker.ConsumerName(cfg.Worker.ConsumerPrefix, i))
		}(i)
	}
	health.SetServing(true)

	<-ctx.Done()
	health.SetServing(false)

	logger.Info("🛑 Waiting for all shutdown gracefully...")
	wg.Wait()

	_ = rdb.Close()
	conn.Close()
	logger.Info("✅ Cleanup done. Exiting.")
}
