package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/backend"
)

type historyOptions struct {
	db      string
	file    string
	ext     string
	sources []string
	unknown bool
	failed  bool
	since   time.Duration
	limit   int
	stats   bool
	json    bool
}

func newHistoryCmd(g *globalOptions) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Query recorded detections",
		Long: `Query detections recorded by detect, serve or proxy.

Records are read from a database (--db, or store.database in the config file)
or from an NDJSON/JSON output file (--file).

Examples:
  # Last 20 detections
  filesig history --db sqlite://filesig.db

  # Every PDF seen under /uploads in the last day
  filesig history --ext pdf --source '/uploads/*' --since 24h

  # Statistics from an output file
  filesig history --file detections.ndjson --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.db == "" && opts.file == "" {
				opts.db = g.cfg.Store.Database
			}
			return runHistory(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.db, "db", "", "Database URL (sqlite://path or postgres://...)")
	cmd.Flags().StringVar(&opts.file, "file", "", "Read records from an output file instead of a database")
	cmd.Flags().StringVar(&opts.ext, "ext", "", "Only detections with this candidate extension")
	cmd.Flags().StringSliceVar(&opts.sources, "source", nil, "Only sources matching these patterns (supports wildcards)")
	cmd.Flags().BoolVar(&opts.unknown, "unknown", false, "Only detections that matched no signature")
	cmd.Flags().BoolVar(&opts.failed, "failed", false, "Only detections whose source could not be read")
	cmd.Flags().DurationVar(&opts.since, "since", 0, "Only detections newer than this (e.g. 24h)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "Maximum number of records (0 for all)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print statistics instead of records")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")

	return cmd
}

func (o *historyOptions) filter() *backend.Filter {
	f := &backend.Filter{
		Extension: o.ext,
		Sources:   o.sources,
		Limit:     o.limit,
		Desc:      true,
	}
	if o.unknown {
		f.Unknown = backend.Bool(true)
	}
	if o.failed {
		f.Failed = backend.Bool(true)
	}
	if o.since > 0 {
		f.StartTime = time.Now().Add(-o.since)
	}
	return f
}

// openQuerier returns a queryable view of the recorded history.
func openQuerier(ctx context.Context, opts *historyOptions) (backend.Querier, func() error, error) {
	switch {
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		recs, err := backend.ReadRecords(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		mem := backend.NewMemoryStore(&backend.MemoryStoreConfig{Limit: len(recs) + 1})
		if err := mem.StoreBatch(ctx, recs); err != nil {
			return nil, nil, err
		}
		return mem, mem.Close, nil
	case opts.db != "":
		db, err := backend.NewDatabaseStore(ctx, &backend.DatabaseStoreConfig{DatabaseURL: opts.db})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		return db, db.Close, nil
	default:
		return nil, nil, errors.New("no history source: use --db or --file, or set store.database in the config file")
	}
}

func runHistory(ctx context.Context, out io.Writer, opts *historyOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	q, closeFn, err := openQuerier(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	filter := opts.filter()

	if opts.stats {
		filter.Limit = 0
		st, err := q.Stats(ctx, filter)
		if err != nil {
			return err
		}
		if opts.json {
			return writeJSON(out, st)
		}
		printHistoryStats(out, st)
		return nil
	}

	recs, err := q.Query(ctx, filter)
	if err != nil {
		return err
	}
	if opts.json {
		enc := json.NewEncoder(out)
		for _, rec := range recs {
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTYPE\tSOURCE")
	for _, rec := range recs {
		typ := describe(rec)
		if rec.Failed() {
			typ = "error: " + rec.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.DetectedAt.Local().Format(time.DateTime), typ, rec.Source)
	}
	return tw.Flush()
}

func printHistoryStats(out io.Writer, st *backend.Stats) {
	fmt.Fprintf(out, "Detections:      %d\n", st.Total)
	fmt.Fprintf(out, "Unique sources:  %d\n", st.UniqueSources)
	fmt.Fprintf(out, "Unknown:         %d\n", st.Unknown)
	fmt.Fprintf(out, "Disputed:        %d\n", st.Disputed)
	fmt.Fprintf(out, "Failed:          %d\n", st.Failed)
	fmt.Fprintf(out, "Duration (ms):   avg %.3f, p50 %.3f, p95 %.3f, p99 %.3f\n",
		st.AvgDurationMs, st.P50DurationMs, st.P95DurationMs, st.P99DurationMs)

	if len(st.ByExtension) == 0 {
		return
	}
	exts := make([]string, 0, len(st.ByExtension))
	for e := range st.ByExtension {
		exts = append(exts, e)
	}
	sort.Slice(exts, func(i, j int) bool {
		if st.ByExtension[exts[i]] != st.ByExtension[exts[j]] {
			return st.ByExtension[exts[i]] > st.ByExtension[exts[j]]
		}
		return exts[i] < exts[j]
	})
	fmt.Fprintln(out, "By extension:")
	for _, e := range exts {
		fmt.Fprintf(out, "  %-8s %d\n", strings.ToUpper(e), st.ByExtension[e])
	}
}
