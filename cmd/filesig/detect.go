package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/filesig"
	"github.com/grokify/filesig/pkg/source"
)

type detectOptions struct {
	json       bool
	headerOnly bool
	store      storeOptions
}

func newDetectCmd(g *globalOptions) *cobra.Command {
	opts := &detectOptions{}

	cmd := &cobra.Command{
		Use:   "detect [path|URL|-]...",
		Short: "Identify the type of files, URLs or standard input",
		Long: `Identify the type of each source from its leading bytes.

Sources may be local paths, file:// URLs, http(s) URLs, or "-" for standard
input. With no arguments standard input is read. A source that matches no
signature prints "unknown". The command exits with status 1 when any source
could not be read.

Examples:
  # Identify local files
  filesig detect photo.jpg archive.bin

  # Identify a download without saving it
  filesig detect https://example.com/file

  # Identify piped data, as JSON
  cat upload.dat | filesig detect --json

  # Only look at offset-0 signatures
  filesig detect --header-only *.bin

  # Keep a history in SQLite
  filesig detect --db sqlite://filesig.db ~/Downloads/*`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), g, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print one JSON record per source")
	cmd.Flags().BoolVar(&opts.headerOnly, "header-only", false, "Only match signatures at offset 0")
	opts.store.addFlags(cmd)

	return cmd
}

func runDetect(ctx context.Context, out io.Writer, in io.Reader, g *globalOptions, opts *detectOptions, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) == 0 {
		args = []string{source.Stdin}
	}

	store, err := g.openStore(ctx, &opts.store, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Shutdown(context.Background()); err != nil {
			g.logger.Error("failed to close detection store", "error", err)
		}
	}()

	matchOpts := []filesig.Option{filesig.WithLogger(g.logger)}
	if opts.headerOnly || g.cfg.Detect.HeaderOnly {
		matchOpts = append(matchOpts, filesig.WithHeaderOnly())
	}
	matcher := filesig.NewMatcher(nil, matchOpts...)
	opener := &source.Opener{Stdin: in}
	enc := json.NewEncoder(out)

	failed := 0
	for _, loc := range args {
		rec := detectOne(ctx, matcher, opener, loc)
		if rec.Failed() {
			failed++
			g.logger.Error("failed to read source", "source", loc, "error", rec.Error)
		}

		if store != nil {
			if err := store.Store.Store(ctx, rec); err != nil {
				g.logger.Warn("failed to record detection", "source", loc, "error", err)
			}
		}

		if opts.json {
			if err := enc.Encode(rec); err != nil {
				return err
			}
			continue
		}
		if rec.Failed() {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", loc, describe(rec))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources could not be read", failed, len(args))
	}
	return nil
}

func detectOne(ctx context.Context, m *filesig.Matcher, opener *source.Opener, loc string) *backend.Record {
	start := time.Now()
	rc, err := opener.Open(ctx, loc)
	if err != nil {
		return backend.NewRecord(loc, filesig.Result{Signature: filesig.None}, err, time.Since(start))
	}
	defer rc.Close()

	res, err := m.Match(ctx, rc)
	return backend.NewRecord(loc, res, err, time.Since(start))
}

// describe renders a record for the plain-text output.
func describe(rec *backend.Record) string {
	if rec.Unknown {
		return "unknown"
	}
	s := strings.Join(rec.Extensions, ",")
	if rec.Description != "" {
		s += " (" + rec.Description + ")"
	}
	if rec.Disputed {
		s += " [disputed]"
	}
	return s
}
