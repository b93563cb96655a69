package factory

import (
	"wdr/internal/config"
	"wdr/internal/modules/withdrawal/handler"
	"wdr/internal/modules/withdrawal/usecase"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	WithdrawalHandler *handler.WithdrawalHandler
	ReceiptUsecase    *usecase.ReceiptUsecase
}

// Build wires the application. rdb may be nil, in which case no events are published.
func Build(cfg *config.Config, rdb redis.UniversalClient) (*Container, error) {
	h, u, err := newWithdrawalFactory(cfg, rdb)
	if err != nil {
		return nil, err
	}
	return &Container{
		WithdrawalHandler: h,
		ReceiptUsecase:    u,
	}, nil
}
