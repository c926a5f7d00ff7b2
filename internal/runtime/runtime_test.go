package runtime

import (
	"context"
	"testing"
	"time"

	cfgpkg "github.com/zhenghui88/dtqueue/internal/config"
	"github.com/zhenghui88/dtqueue/internal/queue"
)

func testConfig(t *testing.T) cfgpkg.Config {
	t.Helper()
	cfg := cfgpkg.Default()
	cfg.DataDir = t.TempDir()
	cfg.Fsync = "always"
	return cfg
}

func TestOpenCloseHealth(t *testing.T) {
	rt, err := Open(Options{Config: testConfig(t)})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	defer rt.Close()
	if err := rt.CheckHealth(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestEngineRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Queues = []string{"default", "jobs"}
	rt, err := Open(Options{Config: cfg})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rt.Close()

	ctx := context.Background()
	h, err := rt.Engine().Resolve("jobs")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if _, err := rt.Engine().Enqueue(ctx, h, queue.NewItem(at, nil, "hello")); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	it, ok, err := rt.Engine().Dequeue(ctx, h)
	if err != nil || !ok {
		t.Fatalf("dequeue: ok=%v err=%v", ok, err)
	}
	if it.Message != "hello" {
		t.Fatalf("message = %q", it.Message)
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fsync = "sometimes"
	if _, err := Open(Options{Config: cfg}); err == nil {
		t.Fatal("expected error for invalid fsync mode")
	}

	cfg = testConfig(t)
	cfg.Queues = []string{"bad name"}
	if _, err := Open(Options{Config: cfg}); err == nil {
		t.Fatal("expected error for invalid queue name")
	}
}
