package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/zhenghui88/dtqueue/internal/registry"
	pebblestore "github.com/zhenghui88/dtqueue/internal/storage/pebble"
	logpkg "github.com/zhenghui88/dtqueue/pkg/log"
)

// MetricsHook observes engine operations. Implementations must be safe
// for concurrent use.
type MetricsHook interface {
	ObserveOp(op, outcome string, elapsed time.Duration)
}

// NoopMetrics discards all observations.
type NoopMetrics struct{}

func (NoopMetrics) ObserveOp(string, string, time.Duration) {}

// Options configures an Engine.
type Options struct {
	DB       *pebblestore.DB
	Registry *registry.Registry

	// MaxWorkers bounds how many storage operations run concurrently
	// across all queues. Values below 1 are treated as 1.
	MaxWorkers int

	Logger  logpkg.Logger
	Metrics MetricsHook
}

// Engine fronts every configured queue: it resolves handles to
// partitions, bounds storage concurrency, and reports per-operation
// metrics.
type Engine struct {
	db      *pebblestore.DB
	reg     *registry.Registry
	sem     *semaphore.Weighted
	logger  logpkg.Logger
	metrics MetricsHook

	queues map[string]*Queue
}

// NewEngine opens every configured queue, writing metadata records for
// queues the store has not seen before.
func NewEngine(opts Options) (*Engine, error) {
	if opts.DB == nil {
		return nil, errors.New("queue: Options.DB is required")
	}
	if opts.Registry == nil {
		return nil, errors.New("queue: Options.Registry is required")
	}
	workers := opts.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	e := &Engine{
		db:      opts.DB,
		reg:     opts.Registry,
		sem:     semaphore.NewWeighted(int64(workers)),
		logger:  logger.WithComponent("queue"),
		metrics: metrics,
		queues:  make(map[string]*Queue),
	}
	for _, name := range opts.Registry.Names() {
		q, err := openQueue(opts.DB, name)
		if err != nil {
			return nil, fmt.Errorf("open queue %q: %w", name, err)
		}
		e.queues[name] = q
	}
	return e, nil
}

// Resolve maps a request path segment onto a configured queue handle.
func (e *Engine) Resolve(name string) (registry.Handle, error) {
	return e.reg.Resolve(name)
}

// Names lists the configured queues in configuration order.
func (e *Engine) Names() []string {
	return e.reg.Names()
}

// Enqueue stores it in the queue h names. It reports whether the item
// was created or replaced an existing one with the same timestamps.
func (e *Engine) Enqueue(ctx context.Context, h registry.Handle, it Item) (Outcome, error) {
	q, err := e.queueFor(h)
	if err != nil {
		return 0, err
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer e.sem.Release(1)

	start := time.Now()
	out, err := q.enqueue(ctx, it)
	e.observe("enqueue", outcomeLabel(out.String(), err), start)
	if err != nil {
		e.logger.Error("enqueue failed", logpkg.Str("queue", h.Name()), logpkg.Err(err))
		return 0, err
	}
	e.logger.Debug("enqueue",
		logpkg.Str("queue", h.Name()),
		logpkg.Str("outcome", out.String()),
		logpkg.Int64("primaryMs", it.Primary))
	return out, nil
}

// Peek returns the earliest item without removing it. ok is false when
// the queue is empty.
func (e *Engine) Peek(ctx context.Context, h registry.Handle) (Item, bool, error) {
	q, err := e.queueFor(h)
	if err != nil {
		return Item{}, false, err
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return Item{}, false, err
	}
	defer e.sem.Release(1)

	start := time.Now()
	it, ok, err := q.peek(ctx)
	e.observe("peek", presenceLabel(ok, err), start)
	if err != nil {
		e.logger.Error("peek failed", logpkg.Str("queue", h.Name()), logpkg.Err(err))
		return Item{}, false, err
	}
	return it, ok, nil
}

// Dequeue removes and returns the earliest item. ok is false when the
// queue is empty. Concurrent dequeues each receive a distinct item.
func (e *Engine) Dequeue(ctx context.Context, h registry.Handle) (Item, bool, error) {
	q, err := e.queueFor(h)
	if err != nil {
		return Item{}, false, err
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return Item{}, false, err
	}
	defer e.sem.Release(1)

	start := time.Now()
	it, ok, err := q.dequeue(ctx)
	e.observe("dequeue", presenceLabel(ok, err), start)
	if err != nil {
		e.logger.Error("dequeue failed", logpkg.Str("queue", h.Name()), logpkg.Err(err))
		return Item{}, false, err
	}
	if ok {
		e.logger.Debug("dequeue",
			logpkg.Str("queue", h.Name()),
			logpkg.Int64("primaryMs", it.Primary))
	}
	return it, ok, nil
}

// Stats reports depth and stored size for the queue h names.
func (e *Engine) Stats(ctx context.Context, h registry.Handle) (Stats, error) {
	q, err := e.queueFor(h)
	if err != nil {
		return Stats{}, err
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return Stats{}, err
	}
	defer e.sem.Release(1)

	start := time.Now()
	st, err := q.stats(ctx)
	e.observe("stats", presenceLabel(true, err), start)
	return st, err
}

// StatsAll reports stats for every configured queue in configuration
// order.
func (e *Engine) StatsAll(ctx context.Context) ([]Stats, error) {
	names := e.reg.Names()
	out := make([]Stats, 0, len(names))
	for _, name := range names {
		h, err := e.reg.Resolve(name)
		if err != nil {
			return nil, err
		}
		st, err := e.Stats(ctx, h)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (e *Engine) queueFor(h registry.Handle) (*Queue, error) {
	q, ok := e.queues[h.Name()]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a configured queue", ErrInvalidQueueName, h.Name())
	}
	return q, nil
}

func (e *Engine) observe(op, outcome string, start time.Time) {
	e.metrics.ObserveOp(op, outcome, time.Since(start))
}

func outcomeLabel(outcome string, err error) string {
	if err != nil {
		return "error"
	}
	return outcome
}

func presenceLabel(ok bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case ok:
		return "item"
	default:
		return "empty"
	}
}
