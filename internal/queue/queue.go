package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"

	pebblestore "github.com/zhenghui88/dtqueue/internal/storage/pebble"
)

// Outcome reports what an enqueue did to the store.
type Outcome int

const (
	// OutcomeCreated means the identity key was new.
	OutcomeCreated Outcome = iota + 1
	// OutcomeReplaced means an existing item's message was overwritten.
	OutcomeReplaced
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Stats describes one queue partition.
type Stats struct {
	Name  string `json:"name"`
	Items int64  `json:"items"`
	Bytes int64  `json:"bytes"`
}

// Meta is the durable per-queue metadata record at q/{queue}/meta.
type Meta struct {
	Name        string `json:"name"`
	CreatedAtMs int64  `json:"createdAtMs"`
}

// Queue owns one durable partition. Mutating operations serialize on mu
// so their read-then-write sequences are atomic; reads go through
// iterator views and never take the lock.
type Queue struct {
	db   *pebblestore.DB
	name string

	mu sync.Mutex
}

// openQueue ensures the meta record exists and returns the live handle.
func openQueue(db *pebblestore.DB, name string) (*Queue, error) {
	q := &Queue{db: db, name: name}
	if _, err := q.ensureMeta(); err != nil {
		return nil, err
	}
	return q, nil
}

// ensureMeta writes the metadata record if it is absent. Idempotent
// across restarts: an existing record is kept as-is.
func (q *Queue) ensureMeta() (Meta, error) {
	key := metaKey(q.name)
	if b, err := q.db.Get(key); err == nil {
		var m Meta
		if jerr := json.Unmarshal(b, &m); jerr == nil && m.Name == q.name {
			return m, nil
		}
	} else if !errors.Is(err, pebblestore.ErrNotFound) {
		return Meta{}, storageErr(err)
	}
	m := Meta{Name: q.name, CreatedAtMs: time.Now().UnixMilli()}
	b, err := json.Marshal(m)
	if err != nil {
		return Meta{}, err
	}
	if err := q.db.Set(key, b); err != nil {
		return Meta{}, storageErr(err)
	}
	return m, nil
}

// enqueue inserts the item under its identity key, replacing any item
// already stored there.
func (q *Queue) enqueue(ctx context.Context, it Item) (Outcome, error) {
	primary, secondary := it.identity()
	key := itemKey(q.name, primary, secondary)

	q.mu.Lock()
	defer q.mu.Unlock()

	outcome := OutcomeCreated
	if _, err := q.db.Get(key); err == nil {
		outcome = OutcomeReplaced
	} else if !errors.Is(err, pebblestore.ErrNotFound) {
		return 0, storageErr(err)
	}

	b := q.db.NewBatch()
	defer b.Close()
	if err := b.Set(key, encodeRecord(it.Message), nil); err != nil {
		return 0, storageErr(err)
	}
	if err := q.db.CommitBatch(ctx, b); err != nil {
		return 0, storageErr(err)
	}
	return outcome, nil
}

// peek returns the earliest item without removing it. The iterator gives
// a point-in-time view, so peek runs lock-free against writers.
func (q *Queue) peek(ctx context.Context) (Item, bool, error) {
	lo, hi := keyRange(itemPrefix(q.name))
	iter, err := q.db.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: hi})
	if err != nil {
		return Item{}, false, storageErr(err)
	}
	defer iter.Close()

	if !iter.First() {
		return Item{}, false, nil
	}
	it, err := itemFromKV(iter.Key(), iter.Value())
	if err != nil {
		return Item{}, false, err
	}
	return it, true, nil
}

// dequeue removes and returns the earliest item. Holding mu across the
// scan and the delete keeps concurrent dequeues from handing out the
// same item twice.
func (q *Queue) dequeue(ctx context.Context) (Item, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	lo, hi := keyRange(itemPrefix(q.name))
	iter, err := q.db.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: hi})
	if err != nil {
		return Item{}, false, storageErr(err)
	}
	if !iter.First() {
		iter.Close()
		return Item{}, false, nil
	}
	key := append([]byte(nil), iter.Key()...)
	val := append([]byte(nil), iter.Value()...)
	if err := iter.Close(); err != nil {
		return Item{}, false, storageErr(err)
	}

	it, err := itemFromKV(key, val)
	if err != nil {
		return Item{}, false, err
	}

	b := q.db.NewBatch()
	defer b.Close()
	if err := b.Delete(key, nil); err != nil {
		return Item{}, false, storageErr(err)
	}
	if err := q.db.CommitBatch(ctx, b); err != nil {
		return Item{}, false, storageErr(err)
	}
	return it, true, nil
}

// stats scans the partition and reports depth and stored byte size.
func (q *Queue) stats(ctx context.Context) (Stats, error) {
	lo, hi := keyRange(itemPrefix(q.name))
	iter, err := q.db.NewIter(&pebble.IterOptions{LowerBound: lo, UpperBound: hi})
	if err != nil {
		return Stats{}, storageErr(err)
	}
	defer iter.Close()

	st := Stats{Name: q.name}
	for ok := iter.First(); ok; ok = iter.Next() {
		st.Items++
		st.Bytes += int64(len(iter.Key()) + len(iter.Value()))
	}
	return st, nil
}

// itemFromKV rebuilds an item from a stored key/value pair.
func itemFromKV(key, value []byte) (Item, error) {
	primary, secondary, ok := identityFromKey(key)
	if !ok {
		return Item{}, fmt.Errorf("%w: malformed key %q", ErrCorruptRecord, key)
	}
	msg, ok := decodeRecord(value)
	if !ok {
		return Item{}, fmt.Errorf("%w: checksum mismatch for key %q", ErrCorruptRecord, key)
	}
	it := Item{Primary: primary, Message: msg}
	if secondary != secondarySentinel {
		it.Secondary = secondary
		it.HasSecondary = true
	}
	return it, nil
}
