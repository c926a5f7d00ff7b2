// Package queue implements the durable priority queues behind the HTTP
// surface.
//
// Each configured queue is an independent partition in one shared Pebble
// store. An item is identified by its timestamp pair (datetime,
// datetime_secondary); enqueueing the same pair again replaces the stored
// message. Peek and Dequeue always act on the chronologically earliest
// item: ascending datetime, ties broken by ascending datetime_secondary,
// with items that carry no secondary timestamp ordering before any that do.
//
// # Keyspace
//
// All keys are prefixed with q/{queue}/:
//
//	meta            - Queue metadata (JSON: name, createdAtMs)
//	item/{key16}    - Item record, keyed by the 16-byte identity key
//
// The identity key is the big-endian concatenation of both timestamps in
// Unix milliseconds with the sign bit flipped, so Pebble's lexicographic
// key order is exactly the queue order and the earliest item is always the
// first key in the partition. An absent secondary timestamp is stored as
// math.MinInt64, which sorts ahead of every representable RFC3339 instant.
//
// # Concurrency
//
// Mutating operations (Enqueue, Dequeue) serialize on a per-queue mutex,
// making their read-then-write sequences atomic: concurrent dequeues hand
// out distinct items exactly once. Peek reads through an iterator snapshot
// and never takes the mutex. Different queues share nothing but the store.
//
// An Engine-wide weighted semaphore bounds how many storage operations run
// at once (Options.MaxWorkers). Waiting honors context cancellation; an
// operation that has begun always runs to completion so the store never
// observes a half-applied batch.
package queue
