package queue

import (
	"encoding/binary"
	"math"
)

// Key layout, one partition per queue:
//
//	q/{queue}/meta            - queue metadata
//	q/{queue}/item/{key16}    - item records in queue order

const (
	queueRoot  = "q/"
	metaSuffix = "meta"
	itemInfix  = "item/"

	identityKeyLen = 16
)

// secondarySentinel encodes "no secondary timestamp". It is below the
// millisecond value of any RFC3339 instant, so such items sort first
// among an equal primary timestamp.
const secondarySentinel = math.MinInt64

func queuePrefix(name string) string {
	return queueRoot + name + "/"
}

func metaKey(name string) []byte {
	return []byte(queuePrefix(name) + metaSuffix)
}

func itemPrefix(name string) string {
	return queuePrefix(name) + itemInfix
}

// itemKey builds the durable key for an item identity. Both timestamps
// are written big-endian with the sign bit flipped, so unsigned
// lexicographic comparison of keys equals signed comparison of the
// (primary, secondary) pairs.
func itemKey(name string, primary, secondary int64) []byte {
	prefix := itemPrefix(name)
	key := make([]byte, len(prefix)+identityKeyLen)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], orderInt64(primary))
	binary.BigEndian.PutUint64(key[len(prefix)+8:], orderInt64(secondary))
	return key
}

// orderInt64 maps an int64 onto a uint64 that preserves signed order
// under unsigned comparison.
func orderInt64(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}

func unorderInt64(u uint64) int64 {
	return int64(u ^ (1 << 63))
}

// identityFromKey recovers the timestamp pair from the trailing 16 key
// bytes.
func identityFromKey(key []byte) (primary, secondary int64, ok bool) {
	if len(key) < identityKeyLen {
		return 0, 0, false
	}
	suffix := key[len(key)-identityKeyLen:]
	primary = unorderInt64(binary.BigEndian.Uint64(suffix[:8]))
	secondary = unorderInt64(binary.BigEndian.Uint64(suffix[8:]))
	return primary, secondary, true
}

// keyRange returns [start, end) bounds covering every key under prefix.
func keyRange(prefix string) (lo, hi []byte) {
	lo = []byte(prefix)
	hi = make([]byte, len(prefix)+1)
	copy(hi, prefix)
	hi[len(prefix)] = 0xFF
	return lo, hi
}
