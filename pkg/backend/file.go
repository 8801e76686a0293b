package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"
)

// FileStore writes records to a file, one per line in NDJSON format.
// This is the simplest sink, used by the CLI's --output flag.
type FileStore struct {
	mu      sync.Mutex
	writer  io.Writer
	file    *os.File // nil if using stdout or provided writer
	format  Format
	metrics Metrics
}

// Format specifies the output format for file-based storage.
type Format string

const (
	FormatNDJSON Format = "ndjson" // Newline-delimited JSON (default)
	FormatJSON   Format = "json"   // Pretty-printed JSON
)

// FileStoreConfig configures a FileStore.
type FileStoreConfig struct {
	// Path is the file path to append to. Empty means stdout.
	Path string

	// Writer is an alternative to Path for custom output destinations.
	// If set, Path is ignored.
	Writer io.Writer

	// Format specifies the output format (default: ndjson).
	Format Format

	// Metrics for observability (optional).
	Metrics Metrics
}

// NewFileStore creates a new file-based store.
func NewFileStore(cfg *FileStoreConfig) (*FileStore, error) {
	if cfg == nil {
		cfg = &FileStoreConfig{}
	}

	store := &FileStore{
		format:  cfg.Format,
		metrics: cfg.Metrics,
	}

	if store.format == "" {
		store.format = FormatNDJSON
	}

	if store.metrics == nil {
		store.metrics = NoopMetrics{}
	}

	if cfg.Writer != nil {
		store.writer = cfg.Writer
	} else if cfg.Path != "" {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		store.file = f
		store.writer = f
	} else {
		store.writer = os.Stdout
	}

	return store, nil
}

// Store writes a single record.
func (s *FileStore) Store(ctx context.Context, rec *Record) error {
	if rec == nil {
		return nil
	}
	start := time.Now()

	var data []byte
	var err error

	switch s.format {
	case FormatJSON:
		data, err = json.MarshalIndent(rec, "", "  ")
	default:
		data, err = json.Marshal(rec)
	}

	if err != nil {
		s.metrics.IncStoreError()
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	_, err = s.writer.Write(data)
	s.mu.Unlock()

	s.metrics.ObserveStoreDuration(time.Since(start))
	if err != nil {
		s.metrics.IncStoreError()
		return err
	}

	s.metrics.IncStoreSuccess(1)
	return nil
}

// StoreBatch writes multiple records.
func (s *FileStore) StoreBatch(ctx context.Context, recs []*Record) error {
	for _, rec := range recs {
		if err := s.Store(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the file if one was opened.
func (s *FileStore) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// ReadRecords decodes records written by a FileStore in either format.
func ReadRecords(r io.Reader) ([]*Record, error) {
	dec := json.NewDecoder(r)
	var recs []*Record
	for {
		rec := &Record{}
		if err := dec.Decode(rec); err != nil {
			if errors.Is(err, io.EOF) {
				return recs, nil
			}
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// DiscardStore is a Store that discards all records.
// Used when history is disabled.
type DiscardStore struct{}

func (DiscardStore) Store(ctx context.Context, rec *Record) error        { return nil }
func (DiscardStore) StoreBatch(ctx context.Context, recs []*Record) error { return nil }
func (DiscardStore) Close() error                                        { return nil }

// MultiStore fans every record out to several stores. Errors from
// individual stores are joined; a failing store does not stop the others.
type MultiStore struct {
	stores []Store
}

// NewMultiStore combines stores. Nil entries are skipped.
func NewMultiStore(stores ...Store) *MultiStore {
	m := &MultiStore{}
	for _, s := range stores {
		if s != nil {
			m.stores = append(m.stores, s)
		}
	}
	return m
}

// Store saves rec in every store.
func (m *MultiStore) Store(ctx context.Context, rec *Record) error {
	var errs []error
	for _, s := range m.stores {
		if err := s.Store(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StoreBatch saves recs in every store.
func (m *MultiStore) StoreBatch(ctx context.Context, recs []*Record) error {
	var errs []error
	for _, s := range m.stores {
		if err := s.StoreBatch(ctx, recs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every store.
func (m *MultiStore) Close() error {
	var errs []error
	for _, s := range m.stores {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of combined stores.
func (m *MultiStore) Len() int { return len(m.stores) }

// Stores returns the combined stores.
func (m *MultiStore) Stores() []Store { return append([]Store(nil), m.stores...) }
