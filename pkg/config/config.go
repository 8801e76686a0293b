// Package config provides configuration file support for filesig.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the filesig configuration file.
type Config struct {
	// Server configuration for the detection API
	Server ServerConfig `yaml:"server"`

	// Detection behaviour
	Detect DetectConfig `yaml:"detect"`

	// Detection history sinks
	Store StoreConfig `yaml:"store"`

	// Detection event publishing
	Events EventsConfig `yaml:"events,omitempty"`

	// Sniffing proxy configuration
	Proxy ProxyConfig `yaml:"proxy"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP API configuration.
type ServerConfig struct {
	// Host to bind to
	Host string `yaml:"host"`
	// Port to listen on
	Port int `yaml:"port"`
	// MetricsPort serves /metrics separately when non-zero
	MetricsPort int `yaml:"metricsPort,omitempty"`
}

// DetectConfig holds matcher configuration.
type DetectConfig struct {
	// HeaderOnly restricts matching to offset-0 signatures
	HeaderOnly bool `yaml:"headerOnly"`
	// MaxUploadSize caps request bodies accepted by the API
	MaxUploadSize int64 `yaml:"maxUploadSize"`
}

// StoreConfig holds detection history configuration.
type StoreConfig struct {
	// Database is a sqlite:// or postgres:// URL
	Database string `yaml:"database,omitempty"`
	// Output is a file receiving one record per line
	Output string `yaml:"output,omitempty"`
	// Format is the output file format (ndjson, json)
	Format string `yaml:"format"`
	// MemoryLimit bounds the in-memory history kept by the server
	MemoryLimit int `yaml:"memoryLimit"`
	// Async wraps the sinks with batching workers
	Async AsyncConfig `yaml:"async"`
}

// AsyncConfig holds batching store configuration.
type AsyncConfig struct {
	Enabled       bool `yaml:"enabled"`
	QueueSize     int  `yaml:"queueSize"`
	BatchSize     int  `yaml:"batchSize"`
	Workers       int  `yaml:"workers"`
	FlushInterval int  `yaml:"flushIntervalMs"`
}

// EventsConfig holds NATS publishing configuration.
type EventsConfig struct {
	// NATSURL enables publishing when set
	NATSURL string `yaml:"natsURL,omitempty"`
	// Subject receives one message per detection
	Subject string `yaml:"subject,omitempty"`
}

// ProxyConfig holds sniffing proxy configuration.
type ProxyConfig struct {
	// Port to listen on
	Port int `yaml:"port"`
	// Upstream proxy URL
	Upstream string `yaml:"upstream,omitempty"`
	// TagHeaders adds X-Filesig-* headers to responses
	TagHeaders bool `yaml:"tagHeaders"`
	// IncludeHosts limits sniffing to these hosts (supports wildcards)
	IncludeHosts []string `yaml:"includeHosts,omitempty"`
	// ExcludeHosts skips these hosts (supports wildcards)
	ExcludeHosts []string `yaml:"excludeHosts,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
	// Format is text or json
	Format string `yaml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Detect: DetectConfig{
			MaxUploadSize: 32 * 1024 * 1024, // 32MB
		},
		Store: StoreConfig{
			Format:      "ndjson",
			MemoryLimit: 10000,
			Async: AsyncConfig{
				QueueSize:     10000,
				BatchSize:     100,
				Workers:       2,
				FlushInterval: 1000,
			},
		},
		Events: EventsConfig{
			Subject: "filesig.detections",
		},
		Proxy: ProxyConfig{
			Port:       8081,
			TagHeaders: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault loads configuration from a file, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Validate checks values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	switch c.Store.Format {
	case "", "ndjson", "json":
	default:
		return fmt.Errorf("invalid store format %q (want ndjson or json)", c.Store.Format)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.Log.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Detect.MaxUploadSize < 0 {
		return fmt.Errorf("invalid maxUploadSize %d", c.Detect.MaxUploadSize)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "filesig.yaml"
	}
	return filepath.Join(home, ".filesig", "config.yaml")
}

// ExampleConfig returns an example configuration as YAML string.
func ExampleConfig() string {
	cfg := DefaultConfig()
	cfg.Store.Database = "sqlite://filesig.db"
	cfg.Store.Output = "detections.ndjson"
	cfg.Events.NATSURL = "nats://127.0.0.1:4222"
	cfg.Proxy.ExcludeHosts = []string{"*.internal.example.com"}

	data, _ := yaml.Marshal(cfg)
	return string(data)
}
