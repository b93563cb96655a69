package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"wdr/internal/modules/withdrawal/model"

	"github.com/redis/go-redis/v9"
)

//go:embed lua/publish_event.lua
var luaPublish string

const dedupeTTL = 24 * time.Hour

type RedisEventPublisher struct {
	rdb        redis.UniversalClient
	scrPublish *redis.Script
	stream     string
	maxLen     int64
}

func NewRedisEventPublisher(rdb redis.UniversalClient, stream string, maxLen int64) *RedisEventPublisher {
	p := &RedisEventPublisher{
		rdb:        rdb,
		scrPublish: redis.NewScript(luaPublish),
		stream:     stream,
		maxLen:     maxLen,
	}

	// Preload SHA so the first publish does not pay for a full EVAL
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = p.scrPublish.Load(ctx, rdb).Err()
	}()

	return p
}

func keyEvent(ev model.WithdrawalEvent) string {
	if ev.Type == model.EventStatusChanged {
		return fmt.Sprintf("evt:{%s}:%s:%s", ev.Record.ID, ev.Type, ev.Record.Status)
	}
	return fmt.Sprintf("evt:{%s}:%s", ev.Record.ID, ev.Type)
}

type PublishResult struct {
	Appended bool
	EntryID  string
}

func (p *RedisEventPublisher) Publish(ctx context.Context, ev model.WithdrawalEvent) (PublishResult, error) {
	payload, err := json.Marshal(ev.Record)
	if err != nil {
		return PublishResult{}, err
	}

	keys := []string{
		p.stream,     // KEYS[1]
		keyEvent(ev), // KEYS[2]
	}
	args := []any{
		ev.Type,
		ev.Record.ID,
		ev.Record.Status.String(),
		string(payload),
		strconv.FormatInt(ev.AtMs, 10),
		p.maxLen,
		int64(dedupeTTL / time.Second),
	}

	raw, err := p.scrPublish.Run(ctx, p.rdb, keys, args...).Slice()
	if err != nil {
		return PublishResult{}, err
	}
	if len(raw) != 2 {
		return PublishResult{}, fmt.Errorf("publish script: unexpected reply %v", raw)
	}
	code, _ := raw[0].(int64)
	entry, _ := raw[1].(string)
	return PublishResult{Appended: code == 1, EntryID: entry}, nil
}
