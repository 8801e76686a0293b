package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grokify/filesig/pkg/config"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage filesig configuration files.`,
	}

	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(g),
	)

	return cmd
}

type configInitOptions struct {
	output string
	force  bool
}

func newConfigInitCmd() *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long: `Create a new configuration file with default settings.

The configuration file uses YAML format and includes all available options
with their default values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path (default: ~/.filesig/config.yaml)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite existing file")

	return cmd
}

func runConfigInit(out io.Writer, opts *configInitOptions) error {
	path := opts.output
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	cfg.Store.Output = "detections.ndjson"

	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "Configuration file created: %s\n", path)
	fmt.Fprintf(out, "\nTo use this configuration:\n")
	fmt.Fprintf(out, "  filesig serve --config %s\n", path)

	return nil
}

type configShowOptions struct {
	example bool
}

func newConfigShowCmd(g *globalOptions) *cobra.Command {
	opts := &configShowOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Display the configuration in effect after loading the config file and
applying defaults. With --example, display an example with every option set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout(), g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.example, "example", false, "Show an example configuration")

	return cmd
}

func runConfigShow(out io.Writer, g *globalOptions, opts *configShowOptions) error {
	if opts.example {
		fmt.Fprintln(out, "# filesig configuration example")
		fmt.Fprintln(out, "#")
		fmt.Fprintln(out, "# Save this to ~/.filesig/config.yaml or specify with --config flag")
		fmt.Fprintln(out)
		fmt.Fprintln(out, config.ExampleConfig())
		return nil
	}

	data, err := yaml.Marshal(g.cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
