package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/filesig"
	"github.com/grokify/filesig/pkg/observability"
	"github.com/grokify/filesig/pkg/proxy"
)

type proxyOptions struct {
	port         int
	host         string
	upstream     string
	noTags       bool
	headerOnly   bool
	includeHosts []string
	excludeHosts []string
	metricsPort  int
	sniffTimeout time.Duration
	verbose      bool
	store        storeOptions
}

func newProxyCmd(g *globalOptions) *cobra.Command {
	opts := &proxyOptions{}

	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Start a forward proxy that sniffs response types",
		Long: `Start an HTTP forward proxy that identifies every response body from its
first bytes. The body reaches the client unchanged; the detected type is added
as X-Filesig-Type (comma separated extensions or "unknown") and
X-Filesig-Disputed headers, and recorded to the configured sinks.

When the declared Content-Type can be checked against the sniffed type,
X-Filesig-Mismatch is set to true or false. Responses that match no signature
get X-Filesig-Class (text, binary or empty).

HTTPS traffic is tunnelled without inspection. Event streams are passed
through unsniffed, and a response whose first bytes are slow to arrive is
matched against what arrived within --sniff-timeout.

Examples:
  # Start the proxy
  filesig proxy --port 8081

  # Record what passes through to SQLite
  filesig proxy --db sqlite://proxy.db

  # Only sniff a CDN, and chain to a corporate proxy
  filesig proxy --include-host '*.cdn.example.com' --upstream http://proxy.corp:3128

  # Use it
  curl -x http://127.0.0.1:8081 -sI http://example.com/file | grep X-Filesig`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := g.cfg.Proxy
			if !cmd.Flags().Changed("port") {
				opts.port = pc.Port
			}
			if !cmd.Flags().Changed("host") {
				opts.host = g.cfg.Server.Host
			}
			opts.upstream = firstNonEmpty(opts.upstream, pc.Upstream)
			if len(opts.includeHosts) == 0 {
				opts.includeHosts = pc.IncludeHosts
			}
			if len(opts.excludeHosts) == 0 {
				opts.excludeHosts = pc.ExcludeHosts
			}
			opts.noTags = opts.noTags || !pc.TagHeaders
			opts.headerOnly = opts.headerOnly || g.cfg.Detect.HeaderOnly
			return runProxy(g, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", 8081, "Port to listen on")
	cmd.Flags().StringVar(&opts.host, "host", "127.0.0.1", "Host to bind to")
	cmd.Flags().StringVar(&opts.upstream, "upstream", "", "Upstream proxy URL (e.g., http://proxy:8080)")
	cmd.Flags().BoolVar(&opts.noTags, "no-tags", false, "Do not add X-Filesig-* response headers")
	cmd.Flags().BoolVar(&opts.headerOnly, "header-only", false, "Only match signatures at offset 0")
	cmd.Flags().StringSliceVar(&opts.includeHosts, "include-host", nil, "Only sniff these hosts (supports wildcards)")
	cmd.Flags().StringSliceVar(&opts.excludeHosts, "exclude-host", nil, "Never sniff these hosts (supports wildcards)")
	cmd.Flags().IntVar(&opts.metricsPort, "metrics-port", 0, "Serve /metrics and health checks on this port")
	cmd.Flags().DurationVar(&opts.sniffTimeout, "sniff-timeout", proxy.DefaultSniffTimeout, "Longest wait for a response's leading bytes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every proxied request")
	opts.store.addFlags(cmd)

	return cmd
}

func runProxy(g *globalOptions, opts *proxyOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := g.logger
	matchOpts := []filesig.Option{filesig.WithLogger(logger)}
	if opts.headerOnly {
		matchOpts = append(matchOpts, filesig.WithHeaderOnly())
	}

	var health *observability.HealthChecker
	if opts.metricsPort > 0 {
		obs, err := observability.NewProvider(&observability.Config{
			ServiceName:      "filesig-proxy",
			ServiceVersion:   version,
			EnablePrometheus: true,
		})
		if err != nil {
			return fmt.Errorf("failed to setup observability: %w", err)
		}
		defer func() {
			if err := obs.Shutdown(context.Background()); err != nil {
				logger.Error("observability shutdown failed", "error", err)
			}
		}()
		matchOpts = append(matchOpts, filesig.WithObserver(observability.NewDetectionObserver(obs.Metrics)))

		health = observability.NewHealthChecker()
		metricsAddr := fmt.Sprintf(":%d", opts.metricsPort)
		go func() {
			logger.Info("metrics server listening", "addr", metricsAddr)
			if err := observability.ListenAndServe(ctx, metricsAddr, observability.NewHealthMux(health, obs)); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	store, err := g.openStore(ctx, &opts.store, nil)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to close detection store", "error", err)
		}
	}()

	cfg := &proxy.Config{
		Matcher:      filesig.NewMatcher(nil, matchOpts...),
		TagHeaders:   !opts.noTags,
		IncludeHosts: opts.includeHosts,
		ExcludeHosts: opts.excludeHosts,
		Upstream:     opts.upstream,
		SniffTimeout: opts.sniffTimeout,
		Verbose:      opts.verbose,
		Logger:       logger,
	}
	if store != nil {
		cfg.Store = store.Store
	}

	p, err := proxy.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create proxy: %w", err)
	}

	if health != nil {
		health.SetReady(true)
		defer health.SetReady(false)
	}
	return p.ListenAndServe(ctx, fmt.Sprintf("%s:%d", opts.host, opts.port))
}
