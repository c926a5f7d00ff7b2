package log

import (
	"context"
	"fmt"
	"os"
)

// log forwards one entry through the slog bridge, which applies the
// formatter and fans out to the configured outputs.
func (l *BaseLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	l.slogLogger.LogAttrs(context.Background(), toSlogLevel(level), msg, attrsFromFieldSlice(fields)...)
}

// Debug logs a message at DebugLevel.
func (l *BaseLogger) Debug(msg string, fields ...Field) {
	l.log(DebugLevel, msg, fields)
}

// Info logs a message at InfoLevel.
func (l *BaseLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields)
}

// Warn logs a message at WarnLevel.
func (l *BaseLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields)
}

// Error logs a message at ErrorLevel.
func (l *BaseLogger) Error(msg string, fields ...Field) {
	l.log(ErrorLevel, msg, fields)
}

// Fatal logs a message at FatalLevel and exits the process.
func (l *BaseLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, fields)
	os.Exit(1)
}

// Debugf logs a printf-style message at DebugLevel.
func (l *BaseLogger) Debugf(msg string, args ...interface{}) {
	if DebugLevel < l.level {
		return
	}
	l.log(DebugLevel, fmt.Sprintf(msg, args...), nil)
}

// Infof logs a printf-style message at InfoLevel.
func (l *BaseLogger) Infof(msg string, args ...interface{}) {
	if InfoLevel < l.level {
		return
	}
	l.log(InfoLevel, fmt.Sprintf(msg, args...), nil)
}

// Warnf logs a printf-style message at WarnLevel.
func (l *BaseLogger) Warnf(msg string, args ...interface{}) {
	if WarnLevel < l.level {
		return
	}
	l.log(WarnLevel, fmt.Sprintf(msg, args...), nil)
}

// Errorf logs a printf-style message at ErrorLevel.
func (l *BaseLogger) Errorf(msg string, args ...interface{}) {
	if ErrorLevel < l.level {
		return
	}
	l.log(ErrorLevel, fmt.Sprintf(msg, args...), nil)
}

// Fatalf logs a printf-style message at FatalLevel and exits the process.
func (l *BaseLogger) Fatalf(msg string, args ...interface{}) {
	l.log(FatalLevel, fmt.Sprintf(msg, args...), nil)
	os.Exit(1)
}

// With returns a logger that attaches the given fields to every entry.
// Derived loggers share the formatter and outputs with the logger that
// created them; level filtering stays with the root logger's handler, so
// SetLevel remains meaningful on the logger NewLogger returned.
func (l *BaseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	nl := *l
	nl.slogLogger = l.slogLogger.With(attrsToAny(attrsFromFieldSlice(fields))...)
	return &nl
}

// WithError returns a logger with an error field on every entry.
func (l *BaseLogger) WithError(err error) Logger {
	return l.With(Err(err))
}

// WithComponent tags every entry with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

// SetLevel sets the minimum level below which entries are dropped.
func (l *BaseLogger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current minimum level.
func (l *BaseLogger) GetLevel() Level {
	return l.level
}
