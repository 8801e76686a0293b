package backend

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps the most recent records in process memory.
// Suitable for the API server when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	recs    []*Record
	limit   int
	metrics Metrics
	closed  bool
}

// MemoryStoreConfig configures a MemoryStore.
type MemoryStoreConfig struct {
	// Limit is the maximum number of records kept (default: 10000).
	// The oldest records are evicted first.
	Limit int

	// Metrics for observability (optional).
	Metrics Metrics
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(cfg *MemoryStoreConfig) *MemoryStore {
	if cfg == nil {
		cfg = &MemoryStoreConfig{}
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = 10000
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &MemoryStore{
		limit:   limit,
		metrics: metrics,
	}
}

// Store saves a single record.
func (s *MemoryStore) Store(ctx context.Context, rec *Record) error {
	if rec == nil {
		return nil
	}
	return s.StoreBatch(ctx, []*Record{rec})
}

// StoreBatch saves multiple records, evicting the oldest beyond the limit.
func (s *MemoryStore) StoreBatch(ctx context.Context, recs []*Record) error {
	start := time.Now()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.metrics.IncStoreError()
		return ErrClosed
	}
	n := 0
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		cp := *rec
		s.recs = append(s.recs, &cp)
		n++
	}
	if over := len(s.recs) - s.limit; over > 0 {
		s.recs = slices.Delete(s.recs, 0, over)
	}
	s.mu.Unlock()

	s.metrics.ObserveStoreDuration(time.Since(start))
	s.metrics.IncStoreSuccess(n)
	return nil
}

// Close marks the store closed and releases the records.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.recs = nil
	return nil
}

// Len returns the number of records held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

// Query returns records matching the filter, oldest first unless filter.Desc.
func (s *MemoryStore) Query(ctx context.Context, filter *Filter) ([]*Record, error) {
	matched, err := s.selectRecords(filter)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return matched, nil
	}
	if filter.Desc {
		slices.Reverse(matched)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []*Record{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Get returns a single record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	for _, r := range s.recs {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Count returns the number of records matching the filter.
func (s *MemoryStore) Count(ctx context.Context, filter *Filter) (int64, error) {
	matched, err := s.selectRecords(filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

// Stats returns aggregate statistics for records matching the filter.
func (s *MemoryStore) Stats(ctx context.Context, filter *Filter) (*Stats, error) {
	matched, err := s.selectRecords(filter)
	if err != nil {
		return nil, err
	}
	return computeStats(matched), nil
}

// selectRecords returns copies of the matching records in insertion order,
// ignoring pagination.
func (s *MemoryStore) selectRecords(filter *Filter) ([]*Record, error) {
	m, err := newMatcher(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	out := make([]*Record, 0, len(s.recs))
	for _, r := range s.recs {
		if m.match(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

var (
	_ Store   = (*MemoryStore)(nil)
	_ Querier = (*MemoryStore)(nil)
)
