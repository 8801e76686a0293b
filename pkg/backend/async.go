package backend

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grokify/mogo/log/slogutil"
)

// AsyncStore wraps a Store with buffered, batched writes so detection never
// blocks on a slow sink. Records are dropped when the queue is full.
type AsyncStore struct {
	store       Store
	queue       chan *Record
	batchSize   int
	flushPeriod time.Duration
	workers     int
	metrics     Metrics
	logger      *slog.Logger

	pending atomic.Int64
	dropped atomic.Int64

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopped  bool
	mu       sync.RWMutex
}

// AsyncConfig configures the async wrapper.
type AsyncConfig struct {
	// QueueSize is the buffer size for pending records (default: 10000).
	QueueSize int

	// BatchSize is the number of records to batch before writing (default: 100).
	BatchSize int

	// FlushPeriod is how often to flush partial batches (default: 100ms).
	FlushPeriod time.Duration

	// Workers is the number of concurrent workers (default: 2).
	Workers int

	// Metrics for observability (optional).
	Metrics Metrics

	// Logger receives batch failures (optional).
	Logger *slog.Logger
}

// DefaultAsyncConfig returns default async configuration.
func DefaultAsyncConfig() *AsyncConfig {
	return &AsyncConfig{
		QueueSize:   10000,
		BatchSize:   100,
		FlushPeriod: 100 * time.Millisecond,
		Workers:     2,
	}
}

// NewAsyncStore wraps a Store with async buffered writes.
func NewAsyncStore(store Store, cfg *AsyncConfig) *AsyncStore {
	if cfg == nil {
		cfg = DefaultAsyncConfig()
	}

	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = 100 * time.Millisecond
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slogutil.Null()
	}

	w := &AsyncStore{
		store:       store,
		queue:       make(chan *Record, cfg.QueueSize),
		batchSize:   cfg.BatchSize,
		flushPeriod: cfg.FlushPeriod,
		workers:     cfg.Workers,
		metrics:     metrics,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}

	for i := 0; i < cfg.Workers; i++ {
		w.wg.Add(1)
		go w.worker()
	}

	return w
}

// Store queues a record for async storage.
// This method never blocks; a full queue drops the record.
func (w *AsyncStore) Store(ctx context.Context, rec *Record) error {
	if rec == nil {
		return nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return ErrClosed
	}

	w.pending.Add(1)
	select {
	case w.queue <- rec:
		return nil
	default:
		w.pending.Add(-1)
		w.dropped.Add(1)
		w.metrics.IncStoreError()
		return nil
	}
}

// StoreBatch queues multiple records for async storage.
func (w *AsyncStore) StoreBatch(ctx context.Context, recs []*Record) error {
	for _, rec := range recs {
		if err := w.Store(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// QueueDepth returns the number of records queued or being written.
func (w *AsyncStore) QueueDepth() int {
	return int(w.pending.Load())
}

// Dropped returns the number of records discarded because the queue was full.
func (w *AsyncStore) Dropped() int64 {
	return w.dropped.Load()
}

// Unwrap returns the wrapped store.
func (w *AsyncStore) Unwrap() Store { return w.store }

// Flush blocks until every queued record has been written.
func (w *AsyncStore) Flush(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if w.pending.Load() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close stops all workers, writes remaining records and closes the wrapped store.
func (w *AsyncStore) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()

	return w.store.Close()
}

func (w *AsyncStore) worker() {
	defer w.wg.Done()

	batch := make([]*Record, 0, w.batchSize)
	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := w.store.StoreBatch(ctx, batch)
		cancel()

		if err != nil {
			w.metrics.IncStoreError()
			w.logger.Error("detection batch store failed", "records", len(batch), "error", err)
		}
		w.metrics.ObserveStoreDuration(time.Since(start))

		w.pending.Add(-int64(len(batch)))
		batch = batch[:0]
	}

	for {
		select {
		case rec := <-w.queue:
			batch = append(batch, rec)
			if len(batch) >= w.batchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-w.stopChan:
			for {
				select {
				case rec := <-w.queue:
					batch = append(batch, rec)
					if len(batch) >= w.batchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}
