package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/events"
)

// storeOptions select the detection history sinks. Empty values fall back to
// the store and events sections of the config file.
type storeOptions struct {
	db      string
	output  string
	format  string
	nats    string
	subject string
	async   bool

	// memoryLimit keeps a queryable in-memory history when no database is set.
	memoryLimit int
}

func (so *storeOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&so.db, "db", "", "Record detections to a database (sqlite://path or postgres://...)")
	cmd.Flags().StringVarP(&so.output, "output", "o", "", "Append detection records to a file")
	cmd.Flags().StringVar(&so.format, "format", "", "Output file format: ndjson or json")
	cmd.Flags().StringVar(&so.nats, "nats", "", "Publish detection events to a NATS server")
	cmd.Flags().StringVar(&so.subject, "subject", "", "NATS subject for detection events")
	cmd.Flags().BoolVar(&so.async, "async", false, "Write records through batching workers")
}

// openedStore is the composed sink plus what is needed to shut it down.
type openedStore struct {
	backend.Store
	async *backend.AsyncStore
}

// Shutdown drains pending writes and closes every sink.
func (s *openedStore) Shutdown(ctx context.Context) error {
	if s == nil || s.Store == nil {
		return nil
	}
	if s.async != nil {
		if err := s.async.Flush(ctx); err != nil {
			return err
		}
	}
	return s.Store.Close()
}

// openStore composes the configured sinks. It returns nil when no sink is
// configured.
func (g *globalOptions) openStore(ctx context.Context, so *storeOptions, metrics backend.Metrics) (*openedStore, error) {
	sc := g.cfg.Store
	db := firstNonEmpty(so.db, sc.Database)
	output := firstNonEmpty(so.output, sc.Output)
	format := firstNonEmpty(so.format, sc.Format)
	natsURL := firstNonEmpty(so.nats, g.cfg.Events.NATSURL)

	var sinks []backend.Store
	closeAll := func() {
		for _, s := range sinks {
			_ = s.Close()
		}
	}

	if db != "" {
		dbStore, err := backend.NewDatabaseStore(ctx, &backend.DatabaseStoreConfig{
			DatabaseURL: db,
			Metrics:     metrics,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		g.logger.Info("recording detections", "database", dbStore.String())
		sinks = append(sinks, dbStore)
	} else if so.memoryLimit > 0 {
		sinks = append(sinks, backend.NewMemoryStore(&backend.MemoryStoreConfig{
			Limit:   so.memoryLimit,
			Metrics: metrics,
		}))
	}

	if output != "" {
		fileStore, err := backend.NewFileStore(&backend.FileStoreConfig{
			Path:    output,
			Format:  backend.Format(format),
			Metrics: metrics,
		})
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to open output file: %w", err)
		}
		g.logger.Info("recording detections", "output", output, "format", format)
		sinks = append(sinks, fileStore)
	}

	if natsURL != "" {
		pub, err := events.Connect(events.Config{
			URL:     natsURL,
			Subject: firstNonEmpty(so.subject, g.cfg.Events.Subject),
			Logger:  g.logger,
		})
		if err != nil {
			closeAll()
			return nil, err
		}
		g.logger.Info("publishing detection events", "url", natsURL, "subject", pub.Subject())
		sinks = append(sinks, pub)
	}

	if len(sinks) == 0 {
		return nil, nil
	}

	var store backend.Store = backend.NewMultiStore(sinks...)
	if len(sinks) == 1 {
		store = sinks[0]
	}

	opened := &openedStore{Store: store}
	if so.async || sc.Async.Enabled {
		ac := sc.Async
		opened.async = backend.NewAsyncStore(store, &backend.AsyncConfig{
			QueueSize:   ac.QueueSize,
			BatchSize:   ac.BatchSize,
			Workers:     ac.Workers,
			FlushPeriod: time.Duration(ac.FlushInterval) * time.Millisecond,
			Metrics:     metrics,
			Logger:      g.logger,
		})
		opened.Store = opened.async
	}
	return opened, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
