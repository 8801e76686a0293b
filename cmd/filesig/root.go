package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grokify/filesig/pkg/config"
)

// globalOptions are shared by every subcommand and resolved before it runs.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "filesig",
		Short: "Identify files by their magic bytes",
		Long: `filesig identifies the type of a file from the signature in its first bytes,
independent of its name or declared content type.

It supports:
  - One-shot detection of local files, URLs and standard input
  - A detection HTTP API with queryable history
  - A forward proxy that tags responses with their sniffed type
  - Detection history in files, SQLite or PostgreSQL
  - Detection events published to NATS`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.resolve(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (default: ~/.filesig/config.yaml if present)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(
		newDetectCmd(g),
		newSignaturesCmd(g),
		newServeCmd(g),
		newProxyCmd(g),
		newHistoryCmd(g),
		newWatchCmd(g),
		newConfigCmd(g),
	)

	return cmd
}

// resolve loads the config file and applies the logging flags on top of it.
func (g *globalOptions) resolve(logOut io.Writer) error {
	path := g.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var err error
	if g.configPath != "" {
		g.cfg, err = config.Load(path)
	} else {
		g.cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return err
	}

	if g.logLevel != "" {
		g.cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		g.cfg.Log.Format = g.logFormat
	}

	g.logger, err = newLogger(logOut, g.cfg.Log)
	return err
}

func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", cfg.Format)
	}
}
