package log

import (
	stdlog "log"
	"strings"
)

// stdLogWriter adapts Logger to io.Writer for the standard library logger.
type stdLogWriter struct {
	logger Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg != "" {
		w.logger.Info(msg)
	}
	return len(p), nil
}

// ToStdLogger returns a *log.Logger whose output routes through logger.
func ToStdLogger(logger Logger) *stdlog.Logger {
	return stdlog.New(stdLogWriter{logger: logger}, "", 0)
}

// RedirectStdLog routes the process-global standard library logger through
// logger. Libraries that write to the default log.Logger (Pebble does)
// then share our formatting and outputs.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{logger: logger})
}
