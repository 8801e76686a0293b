// Package backend provides pluggable storage for detection history.
//
// Detection records can be sent to several sinks at once:
//
//   - MemoryStore: bounded in-process history, queryable (server default)
//   - FileStore: NDJSON or JSON records appended to a file or stdout
//   - DatabaseStore: SQLite or PostgreSQL, queryable
//   - events.Publisher: NATS subject, see package events
//
// AsyncStore decouples callers from slow sinks and MultiStore fans out to
// several of them.
package backend

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("backend: store is closed")

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("backend: record not found")

// Store is the interface for persisting detection records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Store saves a single record.
	Store(ctx context.Context, rec *Record) error

	// StoreBatch saves multiple records efficiently.
	StoreBatch(ctx context.Context, recs []*Record) error

	// Close releases any resources held by the store.
	Close() error
}

// Querier is an optional interface for reading stored records back.
// Write-only sinks such as files and event publishers do not implement it.
type Querier interface {
	// Query returns records matching the filter.
	Query(ctx context.Context, filter *Filter) ([]*Record, error)

	// Get returns a single record by ID.
	Get(ctx context.Context, id string) (*Record, error)

	// Count returns the number of records matching the filter.
	Count(ctx context.Context, filter *Filter) (int64, error)

	// Stats returns aggregate statistics.
	Stats(ctx context.Context, filter *Filter) (*Stats, error)
}

// AsQuerier finds a Querier behind s, looking through AsyncStore and
// MultiStore wrappers.
func AsQuerier(s Store) (Querier, bool) {
	switch v := s.(type) {
	case nil:
		return nil, false
	case Querier:
		return v, true
	case interface{ Unwrap() Store }:
		return AsQuerier(v.Unwrap())
	case *MultiStore:
		for _, inner := range v.stores {
			if q, ok := AsQuerier(inner); ok {
				return q, true
			}
		}
	}
	return nil, false
}

// Filter specifies criteria for querying records. Nil tri-state fields are
// ignored.
type Filter struct {
	// Time range
	StartTime time.Time
	EndTime   time.Time

	// Extension keeps records whose candidates include it, ignoring case.
	Extension string
	// Sources keeps records whose source matches any pattern (supports wildcards).
	Sources []string

	Unknown  *bool
	Disputed *bool
	Failed   *bool

	// Pagination
	Limit  int
	Offset int

	// Desc sorts newest first.
	Desc bool
}

// Bool returns a pointer to v, for the tri-state Filter fields.
func Bool(v bool) *bool { return &v }

// Stats contains aggregate detection statistics.
type Stats struct {
	Total         int64            `json:"total"`
	Unknown       int64            `json:"unknown"`
	Disputed      int64            `json:"disputed"`
	Failed        int64            `json:"failed"`
	UniqueSources int64            `json:"unique_sources"`
	ByExtension   map[string]int64 `json:"by_extension"`
	AvgDurationMs float64          `json:"avg_duration_ms"`
	P50DurationMs float64          `json:"p50_duration_ms"`
	P95DurationMs float64          `json:"p95_duration_ms"`
	P99DurationMs float64          `json:"p99_duration_ms"`
}

// Metrics provides observability for backend operations.
type Metrics interface {
	// IncStoreSuccess adds n to the stored records counter.
	IncStoreSuccess(n int)

	// IncStoreError increments the store error counter.
	IncStoreError()

	// ObserveStoreDuration records store operation duration.
	ObserveStoreDuration(d time.Duration)
}

// NoopMetrics is a Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) IncStoreSuccess(int)                {}
func (NoopMetrics) IncStoreError()                     {}
func (NoopMetrics) ObserveStoreDuration(time.Duration) {}
