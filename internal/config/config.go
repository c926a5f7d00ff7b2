package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zhenghui88/dtqueue/internal/registry"
	pebblestore "github.com/zhenghui88/dtqueue/internal/storage/pebble"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

// Config is the top-level configuration loaded from file/env/flags.
type Config struct {
	// BindAddress is the host the HTTP server listens on.
	BindAddress string `json:"bindAddress"`
	// Port is the HTTP listen port.
	Port int `json:"port"`
	// Queues is the fixed set of queue names the server accepts.
	Queues []string `json:"queues"`
	// DataDir is the root directory for the durable store. Empty means
	// DefaultDataDir().
	DataDir string `json:"dataDir"`
	// Fsync is the WAL sync policy: always, interval, or never.
	Fsync string `json:"fsync"`
	// FsyncIntervalMs bounds group-commit latency when Fsync=interval.
	FsyncIntervalMs int `json:"fsyncIntervalMs"`
	// MaxWorkers bounds concurrently executing storage operations.
	MaxWorkers int `json:"maxWorkers"`
	// Log configures level, format, and optional log file.
	Log logpkg.Config `json:"log"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		BindAddress:     "127.0.0.1",
		Port:            8080,
		Queues:          []string{"default"},
		Fsync:           "interval",
		FsyncIntervalMs: 5,
		MaxWorkers:      1,
		Log: logpkg.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml", ".toml":
		return Config{}, errors.New("only JSON configuration is supported; use a .json file")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate checks the configuration for values that must stop the process
// at startup rather than fail requests later.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("config: maxWorkers %d must be at least 1", c.MaxWorkers)
	}
	if _, err := pebblestore.ParseFsyncMode(c.Fsync); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.FsyncIntervalMs < 0 {
		return fmt.Errorf("config: fsyncIntervalMs %d must not be negative", c.FsyncIntervalMs)
	}
	if len(c.Queues) == 0 {
		return errors.New("config: at least one queue must be configured")
	}
	for _, name := range c.Queues {
		if err := registry.ValidateName(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := logpkg.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// HTTPAddr returns the bind address in host:port form.
func (c *Config) HTTPAddr() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(c.Port))
}
