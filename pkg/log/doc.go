// Package log provides dtqueue's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by log/slog
// through a bridge handler, so slog callers and the facade share one
// formatter/outputs pipeline. The printf methods on Logger let a Logger be
// handed straight to Pebble, whose internal logging wants Infof and
// friends.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("queue")
//	l.Info("enqueue", log.Str("queue", "default"), log.Int64("primaryMs", 1717243200000))
//
// # Configuration
//
// ApplyConfig builds a logger from the declarative Config carried in the
// server configuration: level, text or JSON formatting, and an optional
// log file written alongside the console.
//
// # Interop
//
// RedirectStdLog routes the process-global standard library logger through
// a Logger, which catches libraries that write to log.Default. ToStdLogger
// wraps a Logger as a *log.Logger for APIs that require one.
package log
