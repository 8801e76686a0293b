package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8080 || cfg.Events.Subject != "filesig.detections" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Detect.HeaderOnly = true
	cfg.Store.Database = "sqlite://:memory:"
	cfg.Proxy.IncludeHosts = []string{"*.example.com"}

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Detect.HeaderOnly {
		t.Error("HeaderOnly not persisted")
	}
	if got.Store.Database != "sqlite://:memory:" {
		t.Errorf("Database = %q", got.Store.Database)
	}
	if len(got.Proxy.IncludeHosts) != 1 || got.Proxy.IncludeHosts[0] != "*.example.com" {
		t.Errorf("IncludeHosts = %v", got.Proxy.IncludeHosts)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Store.Async.BatchSize != 100 {
		t.Errorf("BatchSize = %d, want default 100", cfg.Store.Async.BatchSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json log", mutate: func(c *Config) { c.Log.Format = "JSON" }},
		{name: "bad store format", mutate: func(c *Config) { c.Store.Format = "har" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "negative upload", mutate: func(c *Config) { c.Detect.MaxUploadSize = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"": slog.LevelInfo, "debug": slog.LevelDebug, "WARN": slog.LevelWarn, "error": slog.LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestExampleConfig(t *testing.T) {
	ex := ExampleConfig()
	for _, want := range []string{"natsURL:", "database: sqlite://filesig.db", "subject: filesig.detections"} {
		if !strings.Contains(ex, want) {
			t.Errorf("ExampleConfig missing %q", want)
		}
	}
}
