package runtime

import (
	"context"
	"errors"
	"time"

	cfgpkg "github.com/zhenghui88/dtqueue/internal/config"
	"github.com/zhenghui88/dtqueue/internal/metrics"
	"github.com/zhenghui88/dtqueue/internal/queue"
	"github.com/zhenghui88/dtqueue/internal/registry"
	pebblestore "github.com/zhenghui88/dtqueue/internal/storage/pebble"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger logpkg.Logger
}

// Runtime wires storage, the queue registry, and the engine for a
// single-node instance.
type Runtime struct {
	db     *pebblestore.DB
	reg    *registry.Registry
	engine *queue.Engine
	config cfgpkg.Config
}

// Open initializes storage and the queue engine. Queue metadata records
// are written for configured queues the store has not seen before.
func Open(opts Options) (*Runtime, error) {
	cfg := opts.Config

	fsync, err := pebblestore.ParseFsyncMode(cfg.Fsync)
	if err != nil {
		return nil, err
	}
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:       cfg.DataDir,
		Fsync:         fsync,
		FsyncInterval: time.Duration(cfg.FsyncIntervalMs) * time.Millisecond,
		Metrics:       metrics.StoreHook{},
		Logger:        opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(cfg.Queues)
	if err != nil {
		db.Close()
		return nil, err
	}
	engine, err := queue.NewEngine(queue.Options{
		DB:         db,
		Registry:   reg,
		MaxWorkers: cfg.MaxWorkers,
		Logger:     opts.Logger,
		Metrics:    metrics.EngineHook{},
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Runtime{db: db, reg: reg, engine: engine, config: cfg}, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth performs a simple storage probe.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	it.Close()
	return nil
}

// Engine returns the queue engine.
func (r *Runtime) Engine() *queue.Engine { return r.engine }

// Registry returns the configured queue registry.
func (r *Runtime) Registry() *registry.Registry { return r.reg }

// DB exposes the underlying DB for advanced operations (internal use only).
func (r *Runtime) DB() *pebblestore.DB { return r.db }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }
