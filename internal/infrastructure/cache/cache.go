package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"wdr/internal/config"

	"github.com/redis/go-redis/v9"
)

func ConnectRedis(ctx context.Context, cfg config.RedisConfig, clientName string) (redis.UniversalClient, error) {
	opts := Options(cfg, clientName)
	rdb := redis.NewClient(opts)

	// health check
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

// Options builds client options. Stream consumers block on XREADGROUP, so the
// read timeout is left to the per-call block duration.
func Options(cfg config.RedisConfig, clientName string) *redis.Options {
	dbIndex, err := strconv.Atoi(cfg.DB)
	if err != nil {
		dbIndex = 0
	}

	return &redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:        cfg.Password,
		DB:              dbIndex,
		DialTimeout:     1 * time.Second,
		ReadTimeout:     2 * time.Second,
		WriteTimeout:    1 * time.Second,
		PoolSize:        32,
		MinIdleConns:    4,
		PoolTimeout:     2 * time.Second,
		ConnMaxIdleTime: 90 * time.Second,
		MaxRetries:      2,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 200 * time.Millisecond,

		OnConnect: func(ctx context.Context, cn *redis.Conn) error {
			// visible in CLIENT LIST
			_ = cn.ClientSetName(ctx, clientName).Err()
			return nil
		},
	}
}
