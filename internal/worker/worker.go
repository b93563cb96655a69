package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wdr/internal/infrastructure/repository"
	"wdr/internal/modules/withdrawal/model"
	"wdr/internal/modules/withdrawal/usecase"
	"wdr/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Archiver persists withdrawal events for reporting.
type Archiver interface {
	Insert(ctx context.Context, row model.WithdrawalArchive) error
	UpdateStatus(ctx context.Context, receiptID, status string) (int64, error)
}

type Options struct {
	Stream       string        // default: "withdrawal:events"
	Group        string        // default: "withdrawal_archive_cg"
	Block        time.Duration // default: 5s
	Batch        int64         // default: 100
	MinIdle      time.Duration // default: 30s
	TrimAfterAck bool
}

type ArchiveWorker struct {
	rdb      redis.UniversalClient
	archiver Archiver
	opt      Options
}

var errMalformed = errors.New("malformed event")

func NewArchiveWorker(rdb redis.UniversalClient, archiver Archiver, opt *Options) *ArchiveWorker {
	o := Options{
		Stream:  "withdrawal:events",
		Group:   "withdrawal_archive_cg",
		Block:   5 * time.Second,
		Batch:   100,
		MinIdle: 30 * time.Second,
	}
	if opt != nil {
		if opt.Stream != "" {
			o.Stream = opt.Stream
		}
		if opt.Group != "" {
			o.Group = opt.Group
		}
		if opt.Block != 0 {
			o.Block = opt.Block
		}
		if opt.Batch != 0 {
			o.Batch = opt.Batch
		}
		if opt.MinIdle != 0 {
			o.MinIdle = opt.MinIdle
		}
		o.TrimAfterAck = opt.TrimAfterAck
	}
	return &ArchiveWorker{rdb: rdb, archiver: archiver, opt: o}
}

func (w *ArchiveWorker) ensureGroup(ctx context.Context) {
	err := w.rdb.XGroupCreateMkStream(ctx, w.opt.Stream, w.opt.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		logger.Errorf("❌ XGroupCreateMkStream error: %v", err)
	} else if err == nil {
		logger.Infof("✅ Created group %q on %s", w.opt.Group, w.opt.Stream)
	}
}

func (w *ArchiveWorker) reclaimPending(ctx context.Context, consumer string) {
	start := "0-0"
	for {
		msgs, next, err := w.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   w.opt.Stream,
			Group:    w.opt.Group,
			Consumer: consumer,
			MinIdle:  w.opt.MinIdle,
			Start:    start,
			Count:    w.opt.Batch,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				logger.Errorf("❌ XAutoClaim error: %v", err)
			}
			return
		}
		for _, m := range msgs {
			w.handleMessage(ctx, consumer, m)
		}
		if next == "0-0" || len(msgs) == 0 {
			return
		}
		start = next
	}
}

func (w *ArchiveWorker) ack(ctx context.Context, id string) {
	if err := w.rdb.XAck(ctx, w.opt.Stream, w.opt.Group, id).Err(); err != nil {
		logger.Errorf("❌ XAck error (msg=%s): %v", id, err)
	}
	if w.opt.TrimAfterAck {
		_ = w.rdb.XDel(ctx, w.opt.Stream, id).Err()
	}
}

func (w *ArchiveWorker) handleMessage(ctx context.Context, consumer string, m redis.XMessage) {
	ev, err := DecodeEvent(m.Values)
	if err != nil {
		// unreadable entries would be redelivered forever
		logger.Errorf("❌ dropping event (msg=%s): %v", m.ID, err)
		w.ack(ctx, m.ID)
		return
	}

	if err := Apply(ctx, w.archiver, ev); err != nil {
		logger.Errorf("❌ archive error (receipt=%s msg=%s): %v", ev.Record.ID, m.ID, err)
		return // no ack -> reclaimed later
	}

	w.ack(ctx, m.ID)
	logger.Debugf("✅ Handled %s %s for consumer %s", ev.Type, m.ID, consumer)
}

// DecodeEvent reads a stream entry written by the event publisher.
func DecodeEvent(f map[string]interface{}) (model.WithdrawalEvent, error) {
	evType, _ := getStr(f, "type")
	payload, _ := getStr(f, "payload")
	if evType == "" || payload == "" {
		return model.WithdrawalEvent{}, fmt.Errorf("%w: missing type or payload", errMalformed)
	}

	var rec model.WithdrawalRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return model.WithdrawalEvent{}, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if rec.ID == "" {
		return model.WithdrawalEvent{}, fmt.Errorf("%w: payload without id", errMalformed)
	}

	ts, _ := getStr(f, "ts")
	atMs, _ := strconv.ParseInt(ts, 10, 64)

	return model.WithdrawalEvent{Type: evType, Record: rec, AtMs: atMs}, nil
}

// Apply writes one event to the archive. A status change that arrives before
// its created event inserts the full row from the event payload.
func Apply(ctx context.Context, archiver Archiver, ev model.WithdrawalEvent) error {
	row := repository.ArchiveRow(ev.Record, usecase.ParseAmount(ev.Record.Amount))

	switch ev.Type {
	case model.EventCreated:
		return archiver.Insert(ctx, row)
	case model.EventStatusChanged:
		n, err := archiver.UpdateStatus(ctx, ev.Record.ID, ev.Record.Status.String())
		if err != nil {
			return err
		}
		if n == 0 {
			return archiver.Insert(ctx, row)
		}
		return nil
	default:
		logger.Warnf("ignoring unknown event type %q", ev.Type)
		return nil
	}
}

func getStr(m map[string]interface{}, key string) (string, bool) {
	if v, ok := m[key]; ok {
		switch t := v.(type) {
		case string:
			return t, true
		case []byte:
			return string(t), true
		}
	}
	return "", false
}

func (w *ArchiveWorker) Run(ctx context.Context, consumerName string) {
	w.ensureGroup(ctx)
	w.reclaimPending(ctx, consumerName)

	logger.Infof("archive worker %s started", consumerName)
	defer logger.Infof("archive worker %s stopped", consumerName)

	backoff := 200 * time.Millisecond
	lastReclaim := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if time.Since(lastReclaim) > w.opt.MinIdle {
			w.reclaimPending(ctx, consumerName)
			lastReclaim = time.Now()
		}

		res, err := w.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    w.opt.Group,
			Consumer: consumerName,
			Streams:  []string{w.opt.Stream, ">"},
			Count:    w.opt.Batch,
			Block:    w.opt.Block,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			logger.Errorf("❌ XReadGroup error: %v", err)
			time.Sleep(backoff)
			if backoff < 5*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = 200 * time.Millisecond
		for _, strm := range res {
			for _, msg := range strm.Messages {
				w.handleMessage(ctx, consumerName, msg)
			}
		}
	}
}

func ConsumerName(instance string, i int) string {
	if instance == "" {
		instance = "worker"
	}
	return fmt.Sprintf("%s-%d", instance, i)
}
