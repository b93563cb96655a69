package factory

import (
	"wdr/internal/config"
	"wdr/internal/modules/withdrawal/handler"
	"wdr/internal/modules/withdrawal/store"
	"wdr/internal/modules/withdrawal/usecase"
	"wdr/internal/modules/withdrawal/view"

	"github.com/redis/go-redis/v9"
)

func newWithdrawalFactory(cfg *config.Config, rdb redis.UniversalClient) (*handler.WithdrawalHandler, *usecase.ReceiptUsecase, error) {
	records := store.NewMemoryRecordStore()

	opts := []usecase.Option{usecase.WithBaseURL(cfg.App.BaseURL)}
	if rdb != nil {
		publisher := store.NewRedisEventPublisher(rdb, cfg.Redis.Stream, cfg.Redis.MaxLen)
		opts = append(opts, usecase.WithPublisher(publisher))
	}
	receipts := usecase.NewReceiptUsecase(records, opts...)

	renderer, err := view.NewRenderer(*cfg.Brand)
	if err != nil {
		return nil, nil, err
	}

	return handler.NewWithdrawalHandler(receipts, renderer), receipts, nil
}
