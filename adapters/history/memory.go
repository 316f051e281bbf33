package history

import (
	"context"
	"sync"
	"time"

	"fba-cost/internal/errors"
)

// MemoryStore is an in-memory history backend (for tests and one-shot runs)
type MemoryStore struct {
	records map[string]*Record
	mu      sync.RWMutex
	now     func() time.Time
}

// NewMemoryStore creates a memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(record, s.now())
	stored := *record
	s.records[record.ID] = &stored
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, errors.NotFound("quote", id)
	}
	out := *record
	return &out, nil
}

func (s *MemoryStore) List(ctx context.Context, filter *Filter) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*Record, 0, len(s.records))
	for _, record := range s.records {
		out := *record
		records = append(records, &out)
	}
	return filter.apply(records), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return errors.NotFound("quote", id)
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
