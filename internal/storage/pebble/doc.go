// Package pebblestore wraps Pebble behind the small surface the queue
// engine needs: open/close with an fsync policy, point reads that copy
// values out, batches committed atomically through CommitBatch, and range
// iterators for ordered scans.
//
// All queue partitions share one Pebble database; isolation between them
// is purely a matter of key prefixes, owned by the queue package. The
// fsync policy decides when committed batches reach the WAL: every commit
// (always), coalesced within a window (interval), or left to Pebble
// (never).
//
// Usage:
//
//	db, err := pebblestore.Open(pebblestore.Options{
//	    DataDir: "./data",
//	    Fsync:   pebblestore.FsyncModeInterval,
//	})
//	if err != nil { /* handle */ }
//	defer db.Close()
//
//	// Atomic multi-key updates
//	b := db.NewBatch()
//	_ = b.Set([]byte("k"), []byte("v"), nil)
//	_ = db.CommitBatch(context.Background(), b)
//	b.Close()
//
//	// Point ops
//	_ = db.Set([]byte("k2"), []byte("v2"))
//	v, _ := db.Get([]byte("k2"))
//
// The optional MetricsHook observes read, write, and commit latencies and
// sizes; the optional Logger receives Pebble's internal event logging.
package pebblestore
