package queue

import (
	"errors"
	"fmt"

	"github.com/zhenghui88/dtqueue/internal/registry"
)

var (
	// ErrInvalidQueueName re-exports the registry sentinel so engine
	// callers only need to match against one package.
	ErrInvalidQueueName = registry.ErrInvalidQueueName

	// ErrBadItem marks items that fail structural validation: missing or
	// malformed timestamps, unparsable wire payloads.
	ErrBadItem = errors.New("queue: bad item")

	// ErrCorruptRecord marks stored values whose checksum or framing no
	// longer verifies.
	ErrCorruptRecord = errors.New("queue: corrupt record")

	// ErrStorage wraps failures surfaced by the durable store.
	ErrStorage = errors.New("queue: storage failure")
)

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
