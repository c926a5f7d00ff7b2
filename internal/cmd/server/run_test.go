package serverrun

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cfgpkg "github.com/zhenghui88/dtqueue/internal/config"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

func TestResolveStoreDir(t *testing.T) {
	tests := []struct {
		name     string
		dataDir  string
		expected string
	}{
		{
			name:     "empty data dir uses default",
			dataDir:  "",
			expected: "", // resolved against DefaultDataDir()
		},
		{
			name:     "provided data dir is preserved",
			dataDir:  "/custom/data",
			expected: filepath.Join("/custom/data", "store"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveStoreDir(tt.dataDir)
			if tt.expected != "" {
				if got != tt.expected {
					t.Errorf("resolveStoreDir(%q) = %q, want %q", tt.dataDir, got, tt.expected)
				}
				return
			}
			if got == "" {
				t.Fatal("expected a non-empty store dir after fallback")
			}
			if !strings.HasSuffix(got, "store") {
				t.Errorf("store dir should end in \"store\", got %s", got)
			}
			if !filepath.IsAbs(got) && !strings.HasPrefix(got, "./") {
				t.Errorf("store dir should be absolute or start with ./, got %s", got)
			}
		})
	}
}

// TestRunStartsAndStops brings the server up on an ephemeral port and
// lets the context deadline drive the shutdown path.
func TestRunStartsAndStops(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := cfgpkg.Default()
	cfg.DataDir = t.TempDir()
	cfg.Port = 0 // automatic port selection
	cfg.Fsync = "never"
	cfg.Log = logpkg.Config{Level: "error", Format: "text"}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{Config: cfg})
	if err != nil && err != context.DeadlineExceeded && err != context.Canceled {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
