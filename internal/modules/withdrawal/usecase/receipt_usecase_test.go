package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"wdr/internal/modules/withdrawal/dto"
	"wdr/internal/modules/withdrawal/model"
	"wdr/internal/modules/withdrawal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []model.WithdrawalEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, ev model.WithdrawalEvent) (store.PublishResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return store.PublishResult{}, f.err
	}
	f.events = append(f.events, ev)
	return store.PublishResult{Appended: true, EntryID: "1-0"}, nil
}

func newUsecase(t *testing.T, opts ...Option) (*ReceiptUsecase, *store.MemoryRecordStore) {
	t.Helper()
	s := store.NewMemoryRecordStore()
	return NewReceiptUsecase(s, opts...), s
}

func TestSubmitRequest_StoresPendingRecord(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	u, s := newUsecase(t, WithClock(func() time.Time { return fixed }))

	out, err := u.SubmitRequest(context.Background(), validInput(), "203.0.113.7")
	require.NoError(t, err)

	_, err = uuid.Parse(out.ReceiptID)
	require.NoError(t, err, "receipt id is a canonical uuid")
	assert.Equal(t, "/receipt/"+out.ReceiptID, out.URL)
	assert.Equal(t, 1, s.Len())

	got, ok := u.GetReceipt(out.ReceiptID)
	require.True(t, ok)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Equal(t, "bitcoin", got.Chain)
	assert.Equal(t, "1ABC", got.Address)
	assert.Equal(t, "2.5", got.Amount)
	assert.Equal(t, "XYZ", got.PublicCode)
	assert.True(t, got.RequirementConfirmed)
	assert.Equal(t, "203.0.113.7", got.SourceIP)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Equal(t, out.Record, got)
}

func TestSubmitRequest_InvalidDoesNotAppend(t *testing.T) {
	pub := &fakePublisher{}
	u, s := newUsecase(t, WithPublisher(pub))

	cases := map[IntakeError]func(*dto.WithdrawRequestInput){
		MissingChain:            func(in *dto.WithdrawRequestInput) { in.Chain = str("") },
		MissingAddress:          func(in *dto.WithdrawRequestInput) { in.Address = str("") },
		MissingAmount:           func(in *dto.WithdrawRequestInput) { in.Amount = str("") },
		MissingPublicCode:       func(in *dto.WithdrawRequestInput) { in.PublicCode = str("") },
		RequirementNotConfirmed: func(in *dto.WithdrawRequestInput) { in.RequirementConfirmed = nil },
	}
	for want, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := u.SubmitRequest(context.Background(), in, "")
		assert.ErrorIs(t, err, want)
	}

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, pub.events)
}

func TestSubmitRequest_AbsoluteURL(t *testing.T) {
	u, _ := newUsecase(t, WithBaseURL("https://wd.example"))
	out, err := u.SubmitRequest(context.Background(), validInput(), "")
	require.NoError(t, err)
	assert.Equal(t, "https://wd.example/receipt/"+out.ReceiptID, out.URL)
}

func TestGetReceipt_Idempotent(t *testing.T) {
	u, _ := newUsecase(t)
	out, err := u.SubmitRequest(context.Background(), validInput(), "")
	require.NoError(t, err)

	first, ok := u.GetReceipt(out.ReceiptID)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := u.GetReceipt(out.ReceiptID)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}

	_, ok = u.GetReceipt("does-not-exist")
	assert.False(t, ok)
}

func TestSubmitRequest_UniqueIDs(t *testing.T) {
	u, s := newUsecase(t)
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		out, err := u.SubmitRequest(context.Background(), validInput(), "")
		require.NoError(t, err)
		_, dup := seen[out.ReceiptID]
		require.False(t, dup, "duplicate id %s", out.ReceiptID)
		seen[out.ReceiptID] = struct{}{}
	}
	assert.Equal(t, n, s.Len())
}

func TestList_InsertionOrder(t *testing.T) {
	u, _ := newUsecase(t)

	var ids []string
	for _, code := range []string{"A", "B", "C"} {
		in := validInput()
		in.PublicCode = str(code)
		out, err := u.SubmitRequest(context.Background(), in, "")
		require.NoError(t, err)
		ids = append(ids, out.ReceiptID)
	}

	all := u.List()
	require.Len(t, all, 3)
	for i, rec := range all {
		assert.Equal(t, ids[i], rec.ID)
	}
	assert.Equal(t, "A", all[0].PublicCode)
	assert.Equal(t, "C", all[2].PublicCode)
}

func TestUpdateStatus(t *testing.T) {
	pub := &fakePublisher{}
	u, _ := newUsecase(t, WithPublisher(pub))
	out, err := u.SubmitRequest(context.Background(), validInput(), "")
	require.NoError(t, err)

	_, err = u.UpdateStatus(context.Background(), out.ReceiptID, model.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = u.UpdateStatus(context.Background(), "missing", model.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	rec, err := u.UpdateStatus(context.Background(), out.ReceiptID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, rec.Status)

	rec, err = u.UpdateStatus(context.Background(), out.ReceiptID, model.StatusRejected)
	assert.ErrorIs(t, err, ErrStatusFinal)
	assert.Equal(t, model.StatusCompleted, rec.Status)

	got, _ := u.GetReceipt(out.ReceiptID)
	assert.Equal(t, model.StatusCompleted, got.Status)

	require.Len(t, pub.events, 2)
	assert.Equal(t, model.EventCreated, pub.events[0].Type)
	assert.Equal(t, model.EventStatusChanged, pub.events[1].Type)
	assert.Equal(t, model.StatusCompleted, pub.events[1].Record.Status)
}

func TestSubmitRequest_PublishFailureIsNotFatal(t *testing.T) {
	pub := &fakePublisher{err: errors.New("redis down")}
	u, s := newUsecase(t, WithPublisher(pub))

	out, err := u.SubmitRequest(context.Background(), validInput(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	_, ok := u.GetReceipt(out.ReceiptID)
	assert.True(t, ok)
}

func TestSubmitRequest_Concurrent(t *testing.T) {
	u, s := newUsecase(t)
	const n = 200

	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := u.SubmitRequest(context.Background(), validInput(), "")
			if assert.NoError(t, err) {
				ids <- out.ReceiptID
			}
		}()
	}
	wg.Wait()
	close(ids)

	for id := range ids {
		_, ok := u.GetReceipt(id)
		assert.True(t, ok)
	}
	assert.Equal(t, n, s.Len())
}
