package store

import (
	"sync"

	"wdr/internal/modules/withdrawal/model"
)

// MemoryRecordStore keeps withdrawal records for the life of the process:
// an insertion-ordered list plus an id index, both guarded by one lock.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records []*model.WithdrawalRecord
	byID    map[string]*model.WithdrawalRecord
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		byID: make(map[string]*model.WithdrawalRecord),
	}
}

func (s *MemoryRecordStore) Append(rec model.WithdrawalRecord) {
	r := rec
	s.mu.Lock()
	s.records = append(s.records, &r)
	s.byID[r.ID] = &r
	s.mu.Unlock()
}

// GetByID returns a copy of the record; ok is false for an unknown id.
func (s *MemoryRecordStore) GetByID(id string) (model.WithdrawalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return model.WithdrawalRecord{}, false
	}
	return *r, true
}

// All returns copies of every record, oldest first.
func (s *MemoryRecordStore) All() []model.WithdrawalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WithdrawalRecord, len(s.records))
	for i, r := range s.records {
		out[i] = *r
	}
	return out
}

func (s *MemoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// UpdateStatus sets the status of an existing record and reports whether it did.
func (s *MemoryRecordStore) UpdateStatus(id string, status model.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return false
	}
	r.Status = status
	return true
}

// CompareAndSetStatus sets status only while the record is still in from.
// It returns the record after the call and whether the swap happened.
func (s *MemoryRecordStore) CompareAndSetStatus(id string, from, to model.Status) (model.WithdrawalRecord, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return model.WithdrawalRecord{}, false, false
	}
	if r.Status != from {
		return *r, true, false
	}
	r.Status = to
	return *r, true, true
}
