package usecase

import (
	"context"
	"time"

	"wdr/internal/modules/withdrawal/dto"
	"wdr/internal/modules/withdrawal/model"
	"wdr/internal/modules/withdrawal/store"
	"wdr/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RecordStore is the storage the receipt usecase needs.
type RecordStore interface {
	Append(rec model.WithdrawalRecord)
	GetByID(id string) (model.WithdrawalRecord, bool)
	All() []model.WithdrawalRecord
	CompareAndSetStatus(id string, from, to model.Status) (model.WithdrawalRecord, bool, bool)
}

// EventPublisher receives created/status-changed events. Failures are logged
// and never fail the operation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, ev model.WithdrawalEvent) (store.PublishResult, error)
}

const publishTimeout = 2 * time.Second

type ReceiptUsecase struct {
	records   RecordStore
	publisher EventPublisher
	baseURL   string
	now       func() time.Time
	newID     func() string
}

type Option func(*ReceiptUsecase)

func WithPublisher(p EventPublisher) Option {
	return func(u *ReceiptUsecase) { u.publisher = p }
}

// WithBaseURL makes receipt URLs absolute.
func WithBaseURL(base string) Option {
	return func(u *ReceiptUsecase) { u.baseURL = base }
}

func WithClock(now func() time.Time) Option {
	return func(u *ReceiptUsecase) { u.now = now }
}

func NewReceiptUsecase(records RecordStore, opts ...Option) *ReceiptUsecase {
	u := &ReceiptUsecase{
		records: records,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ReceiptURL is where the HTML receipt for id is served.
func (u *ReceiptUsecase) ReceiptURL(id string) string {
	return u.baseURL + "/receipt/" + id
}

// SubmitRequest validates a submission and stores it as a Pending record.
// Nothing is stored when validation fails.
func (u *ReceiptUsecase) SubmitRequest(ctx context.Context, in dto.WithdrawRequestInput, sourceIP string) (dto.SubmitOutput, error) {
	valid, err := Validate(in)
	if err != nil {
		return dto.SubmitOutput{}, err
	}

	rec := model.WithdrawalRecord{
		ID:                   u.newID(),
		Status:               model.StatusPending,
		CreatedAt:            u.now().UTC(),
		Chain:                valid.Chain,
		Address:              valid.Address,
		Amount:               valid.Amount,
		PublicCode:           valid.PublicCode,
		RequirementConfirmed: valid.RequirementConfirmed,
		SourceIP:             sourceIP,
	}
	u.records.Append(rec)

	u.publish(ctx, model.EventCreated, rec)

	return dto.SubmitOutput{
		ReceiptID: rec.ID,
		URL:       u.ReceiptURL(rec.ID),
		Record:    rec,
	}, nil
}

// GetReceipt looks a record up by id. Reads never modify the record.
func (u *ReceiptUsecase) GetReceipt(id string) (model.WithdrawalRecord, bool) {
	return u.records.GetByID(id)
}

// List returns every record, oldest first.
func (u *ReceiptUsecase) List() []model.WithdrawalRecord {
	return u.records.All()
}

// UpdateStatus moves a Pending record to Completed or Rejected. Final states
// do not change again.
func (u *ReceiptUsecase) UpdateStatus(ctx context.Context, id string, to model.Status) (model.WithdrawalRecord, error) {
	if !to.Final() {
		return model.WithdrawalRecord{}, ErrInvalidStatus
	}

	rec, found, swapped := u.records.CompareAndSetStatus(id, model.StatusPending, to)
	switch {
	case !found:
		return model.WithdrawalRecord{}, ErrNotFound
	case !swapped:
		return rec, ErrStatusFinal
	}

	u.publish(ctx, model.EventStatusChanged, rec)
	return rec, nil
}

func (u *ReceiptUsecase) publish(ctx context.Context, evType string, rec model.WithdrawalRecord) {
	if u.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	res, err := u.publisher.Publish(ctx, model.WithdrawalEvent{
		Type:   evType,
		Record: rec,
		AtMs:   u.now().UnixMilli(),
	})
	fields := logrus.Fields{"event": evType, "receipt_id": rec.ID}
	if err != nil {
		logger.WithFields(fields).Warnf("⚠️ event publish failed: %v", err)
		return
	}
	if !res.Appended {
		logger.WithFields(fields).Debug("event already published")
	}
}
