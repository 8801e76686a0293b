package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	nats "github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/backend"
	"github.com/grokify/filesig/pkg/events"
)

type watchOptions struct {
	url     string
	subject string
	ext     string
	json    bool
}

func newWatchCmd(g *globalOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print detection events as they are published",
		Long: `Subscribe to the NATS subject that detect, serve and proxy publish to
(--nats) and print every detection as it happens.

Examples:
  filesig watch --nats nats://127.0.0.1:4222
  filesig watch --ext exe --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.url = firstNonEmpty(opts.url, g.cfg.Events.NATSURL)
			opts.subject = firstNonEmpty(opts.subject, g.cfg.Events.Subject)
			if opts.url == "" {
				return errors.New("no NATS server: use --nats or set events.natsURL in the config file")
			}
			return runWatch(g, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "nats", "", "NATS server URL")
	cmd.Flags().StringVar(&opts.subject, "subject", "", "Subject to subscribe to")
	cmd.Flags().StringVar(&opts.ext, "ext", "", "Only print detections with this candidate extension")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print one JSON record per event")

	return cmd
}

func runWatch(g *globalOptions, out io.Writer, opts *watchOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nc, err := nats.Connect(opts.url, nats.Name("filesig-watch"))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", opts.url, err)
	}
	defer nc.Close()

	var mu sync.Mutex
	enc := json.NewEncoder(out)
	sub, err := events.Subscribe(nc, opts.subject, g.logger, func(_ context.Context, rec *backend.Record) {
		if opts.ext != "" && !rec.HasExtension(opts.ext) {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if opts.json {
			_ = enc.Encode(rec)
			return
		}
		fmt.Fprintf(out, "%s: %s\n", rec.Source, describe(rec))
	})
	if err != nil {
		return err
	}
	defer func() { _ = sub.Unsubscribe() }()

	g.logger.Info("watching detection events", "url", opts.url, "subject", sub.Subject)
	<-ctx.Done()
	return nil
}
