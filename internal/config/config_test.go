package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BindAddress != "127.0.0.1" {
		t.Fatalf("default bind address, got %q", cfg.BindAddress)
	}
	if cfg.Port != 8080 {
		t.Fatalf("default port, got %d", cfg.Port)
	}
	if diff := cmp.Diff([]string{"default"}, cfg.Queues); diff != "" {
		t.Fatalf("default queues (-want +got):\n%s", diff)
	}
	if cfg.MaxWorkers != 1 {
		t.Fatalf("default maxWorkers, got %d", cfg.MaxWorkers)
	}
	if cfg.Fsync != "interval" {
		t.Fatalf("default fsync, got %q", cfg.Fsync)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dtqueue.json")
	data := []byte(`{
		"bindAddress": "0.0.0.0",
		"port": 9000,
		"queues": ["default", "orders"],
		"fsync": "always",
		"maxWorkers": 4,
		"log": {"level": "debug", "format": "json"}
	}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BindAddress != "0.0.0.0" || cfg.Port != 9000 {
		t.Fatalf("address not loaded: %q:%d", cfg.BindAddress, cfg.Port)
	}
	if diff := cmp.Diff([]string{"default", "orders"}, cfg.Queues); diff != "" {
		t.Fatalf("queues (-want +got):\n%s", diff)
	}
	if cfg.Fsync != "always" || cfg.MaxWorkers != 4 {
		t.Fatalf("fsync/maxWorkers not loaded: %q/%d", cfg.Fsync, cfg.MaxWorkers)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log config not loaded: %+v", cfg.Log)
	}
	// Unset keys keep their defaults.
	if cfg.FsyncIntervalMs != 5 {
		t.Fatalf("fsyncIntervalMs default lost: %d", cfg.FsyncIntervalMs)
	}
}

func TestLoadRejectsNonJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dtqueue.toml")
	if err := os.WriteFile(file, []byte("port = 9000\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected error for non-JSON config")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("DTQUEUE_BIND_ADDRESS", "10.0.0.1")
	t.Setenv("DTQUEUE_PORT", "8100")
	t.Setenv("DTQUEUE_QUEUES", "alpha, beta ,gamma")
	t.Setenv("DTQUEUE_MAX_WORKERS", "8")
	t.Setenv("DTQUEUE_LOG_LEVEL", "warn")
	FromEnv(&cfg)

	if cfg.BindAddress != "10.0.0.1" || cfg.Port != 8100 {
		t.Fatalf("env address overlay: %q:%d", cfg.BindAddress, cfg.Port)
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, cfg.Queues); diff != "" {
		t.Fatalf("env queues overlay (-want +got):\n%s", diff)
	}
	if cfg.MaxWorkers != 8 {
		t.Fatalf("env maxWorkers overlay: %d", cfg.MaxWorkers)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("env log level overlay: %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"workers zero", func(c *Config) { c.MaxWorkers = 0 }},
		{"bad fsync", func(c *Config) { c.Fsync = "sometimes" }},
		{"negative fsync interval", func(c *Config) { c.FsyncIntervalMs = -1 }},
		{"no queues", func(c *Config) { c.Queues = nil }},
		{"bad queue name", func(c *Config) { c.Queues = []string{"not a name"} }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestHTTPAddr(t *testing.T) {
	cfg := Default()
	cfg.BindAddress = "0.0.0.0"
	cfg.Port = 8100
	if got := cfg.HTTPAddr(); got != "0.0.0.0:8100" {
		t.Fatalf("HTTPAddr() = %q", got)
	}
}
