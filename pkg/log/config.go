package log

import (
	"fmt"
	"strings"
)

// Config declares logger behavior in the shape carried by configuration
// files and flags.
type Config struct {
	// Level is one of debug, info, warn, error, fatal. Empty means info.
	Level string `json:"level"`
	// Format is text or json. Empty means text.
	Format string `json:"format"`
	// File, when set, appends entries to the named file in addition to
	// the console.
	File string `json:"file"`
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive; the empty string maps to InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// ApplyConfig builds a Logger from cfg. A nil cfg yields the default
// logger (info, JSON formatter, console).
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		return NewLogger(), nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var formatter Formatter
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	opts := []LoggerOption{WithLevel(level), WithFormatter(formatter)}
	if cfg.File != "" {
		fileOut, err := NewFileOutput(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		opts = append(opts, WithOutput(NewConsoleOutput()), WithOutput(fileOut))
	}
	return NewLogger(opts...), nil
}
