package log

import (
	"bytes"
	"encoding/json"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newCaptureLogger(t *testing.T, level Level) (Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := NewLogger(
		WithLevel(level),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(buf)),
	)
	return l, buf
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"info", InfoLevel, false},
		{"", InfoLevel, false},
		{"WARN", WarnLevel, false},
		{"warning", WarnLevel, false},
		{"Error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"verbose", InfoLevel, true},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newCaptureLogger(t, WarnLevel)
	l.Debug("dropped debug")
	l.Info("dropped info")
	l.Warn("kept warn")
	l.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("entries below level leaked: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Fatalf("expected warn and error entries, got %q", out)
	}
}

func TestTextFormatterFields(t *testing.T) {
	l, buf := newCaptureLogger(t, DebugLevel)
	l.Info("enqueue ok", Str("queue", "default"), Int("depth", 3))

	out := buf.String()
	if !strings.Contains(out, "[INFO] enqueue ok") {
		t.Fatalf("missing level/message: %q", out)
	}
	// Sorted key order: depth before queue.
	if !strings.Contains(out, "depth=3 queue=default") {
		t.Fatalf("missing or unsorted fields: %q", out)
	}
}

func TestWithCarriesFields(t *testing.T) {
	l, buf := newCaptureLogger(t, DebugLevel)
	child := l.With(Component("engine"), Str("queue", "orders"))
	child.Info("dequeued")

	out := buf.String()
	if !strings.Contains(out, "component=engine") || !strings.Contains(out, "queue=orders") {
		t.Fatalf("derived fields missing: %q", out)
	}

	buf.Reset()
	l.Info("plain")
	if strings.Contains(buf.String(), "component=engine") {
		t.Fatalf("parent logger inherited child fields: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}
	b, err := f.Format(&Entry{
		Level:     InfoLevel,
		Message:   "hello",
		Fields:    Fields{"queue": "default", "n": 7},
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal formatted entry: %v", err)
	}
	if m["level"] != "INFO" || m["msg"] != "hello" || m["queue"] != "default" {
		t.Fatalf("unexpected entry: %v", m)
	}
}

func TestErrField(t *testing.T) {
	if f := Err(nil); f.Value != "" {
		t.Fatalf("Err(nil) = %v, want empty", f.Value)
	}
	if f := Err(os.ErrNotExist); f.Key != "error" || f.Value == "" {
		t.Fatalf("Err(ErrNotExist) = %+v", f)
	}
}

func TestApplyConfigFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	l, err := ApplyConfig(&Config{Level: "debug", Format: "text", File: path})
	if err != nil {
		t.Fatalf("ApplyConfig: %v", err)
	}
	l.Info("persisted line", Str("k", "v"))

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "persisted line") {
		t.Fatalf("log file missing entry: %q", string(b))
	}
}

func TestApplyConfigRejectsUnknown(t *testing.T) {
	if _, err := ApplyConfig(&Config{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := ApplyConfig(&Config{Format: "yaml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestRedirectStdLog(t *testing.T) {
	l, buf := newCaptureLogger(t, DebugLevel)
	RedirectStdLog(l)
	t.Cleanup(func() {
		stdlog.SetOutput(os.Stderr)
		stdlog.SetFlags(stdlog.LstdFlags)
	})

	stdlog.Printf("pebble: compaction done")
	if !strings.Contains(buf.String(), "pebble: compaction done") {
		t.Fatalf("stdlib log line not captured: %q", buf.String())
	}
}
