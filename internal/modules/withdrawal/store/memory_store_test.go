package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"wdr/internal/modules/withdrawal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string) model.WithdrawalRecord {
	return model.WithdrawalRecord{
		ID:                   id,
		Status:               model.StatusPending,
		CreatedAt:            time.Now(),
		Chain:                "bitcoin",
		Address:              "1ABC",
		Amount:               "1",
		PublicCode:           "P",
		RequirementConfirmed: true,
	}
}

func TestMemoryRecordStore_AppendAndGet(t *testing.T) {
	s := NewMemoryRecordStore()
	s.Append(rec("a"))

	got, ok := s.GetByID("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)

	_, ok = s.GetByID("missing")
	assert.False(t, ok)
}

func TestMemoryRecordStore_AllInsertionOrder(t *testing.T) {
	s := NewMemoryRecordStore()
	for _, id := range []string{"A", "B", "C"} {
		s.Append(rec(id))
	}

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestMemoryRecordStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryRecordStore()
	s.Append(rec("a"))

	got, _ := s.GetByID("a")
	got.Amount = "999"
	all := s.All()
	all[0].Chain = "mutated"

	again, _ := s.GetByID("a")
	assert.Equal(t, "1", again.Amount)
	assert.Equal(t, "bitcoin", again.Chain)
}

func TestMemoryRecordStore_UpdateStatus(t *testing.T) {
	s := NewMemoryRecordStore()
	s.Append(rec("a"))

	assert.True(t, s.UpdateStatus("a", model.StatusCompleted))
	got, _ := s.GetByID("a")
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, model.StatusCompleted, s.All()[0].Status, "list and index share the record")

	assert.False(t, s.UpdateStatus("missing", model.StatusRejected))
}

func TestMemoryRecordStore_CompareAndSetStatus(t *testing.T) {
	s := NewMemoryRecordStore()
	s.Append(rec("a"))

	got, found, swapped := s.CompareAndSetStatus("a", model.StatusPending, model.StatusRejected)
	assert.True(t, found)
	assert.True(t, swapped)
	assert.Equal(t, model.StatusRejected, got.Status)

	got, found, swapped = s.CompareAndSetStatus("a", model.StatusPending, model.StatusCompleted)
	assert.True(t, found)
	assert.False(t, swapped)
	assert.Equal(t, model.StatusRejected, got.Status)

	_, found, _ = s.CompareAndSetStatus("missing", model.StatusPending, model.StatusCompleted)
	assert.False(t, found)
}

func TestMemoryRecordStore_ConcurrentAppend(t *testing.T) {
	s := NewMemoryRecordStore()
	const writers, perWriter = 8, 250

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id := fmt.Sprintf("%d-%d", w, i)
				s.Append(rec(id))
				_, ok := s.GetByID(id)
				assert.True(t, ok)
				_ = s.All()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, s.Len())
	assert.Len(t, s.All(), writers*perWriter)
}
