package serverrun

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	cfgpkg "github.com/zhenghui88/dtqueue/internal/config"
	"github.com/zhenghui88/dtqueue/internal/runtime"
	httpserver "github.com/zhenghui88/dtqueue/internal/server/http"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

type Options struct {
	Config cfgpkg.Config
}

// resolveStoreDir picks the Pebble directory: the configured data dir or
// the OS default, with the store living in a "store" subdirectory.
func resolveStoreDir(dataDir string) string {
	if dataDir == "" {
		dataDir = cfgpkg.DefaultDataDir()
	}
	return filepath.Join(dataDir, "store")
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context
	// or if signal delivery needs to be observed here. We layer a
	// local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opts.Config
	cfg.DataDir = resolveStoreDir(cfg.DataDir)

	procLogger, err := logpkg.ApplyConfig(&cfg.Log)
	if err != nil {
		// Fallback to a sane default
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(cfg.Log.Level); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	// Redirect stdlib logs (e.g., Pebble) to our logger
	logpkg.RedirectStdLog(procLogger)

	rt, err := runtime.Open(runtime.Options{Config: cfg, Logger: procLogger})
	if err != nil {
		return err
	}
	defer rt.Close()

	procLogger.Info("Starting dtqueue server",
		logpkg.Str("http", cfg.HTTPAddr()),
		logpkg.Str("dataDir", cfg.DataDir),
		logpkg.Str("fsync", cfg.Fsync),
		logpkg.Int("queues", len(cfg.Queues)),
		logpkg.Int("maxWorkers", cfg.MaxWorkers),
		logpkg.Str("level", cfg.Log.Level),
		logpkg.Str("format", cfg.Log.Format),
	)

	hsrv := httpserver.New(rt, procLogger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, cfg.HTTPAddr()); err != nil && sctx.Err() == nil {
			log.Printf("http error: %v", err)
		}
	}()

	<-sctx.Done()
	// Shut the server down before closing the runtime/DB to avoid races.
	hsrv.Close()
	wg.Wait()
	procLogger.Info("dtqueue server stopped")
	return nil
}
