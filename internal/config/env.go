package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays DTQUEUE_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("DTQUEUE_BIND_ADDRESS"); v != "" {
		cfg.BindAddress = v
	}
	if v := os.Getenv("DTQUEUE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("DTQUEUE_QUEUES"); v != "" {
		parts := strings.Split(v, ",")
		cfg.Queues = nil
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.Queues = append(cfg.Queues, p)
			}
		}
	}
	if v := os.Getenv("DTQUEUE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("DTQUEUE_FSYNC"); v != "" {
		cfg.Fsync = v
	}
	if v := os.Getenv("DTQUEUE_FSYNC_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FsyncIntervalMs = n
		}
	}
	if v := os.Getenv("DTQUEUE_MAX_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxWorkers = n
		}
	}
	if v := os.Getenv("DTQUEUE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DTQUEUE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("DTQUEUE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
