package queue

import (
	"bytes"
	"testing"
)

func TestItemKeyOrderMatchesQueueOrder(t *testing.T) {
	// Pairs listed in ascending queue order: primary first, then
	// secondary, with the sentinel ahead of any real secondary.
	pairs := [][2]int64{
		{-86400000, secondarySentinel},
		{-86400000, -5},
		{-86400000, 0},
		{0, secondarySentinel},
		{0, 7},
		{1717243200000, secondarySentinel},
		{1717243200000, -1},
		{1717243200000, 1717243200000},
		{1717243200001, secondarySentinel},
	}
	var prev []byte
	for i, p := range pairs {
		key := itemKey("default", p[0], p[1])
		if prev != nil && bytes.Compare(prev, key) >= 0 {
			t.Fatalf("pair %d (%d,%d) does not sort after its predecessor", i, p[0], p[1])
		}
		prev = key
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	cases := [][2]int64{
		{0, secondarySentinel},
		{-1, -1},
		{1717243200123, 1718000000456},
	}
	for _, c := range cases {
		key := itemKey("jobs", c[0], c[1])
		p, s, ok := identityFromKey(key)
		if !ok {
			t.Fatalf("identityFromKey rejected key for (%d,%d)", c[0], c[1])
		}
		if p != c[0] || s != c[1] {
			t.Fatalf("round trip (%d,%d) = (%d,%d)", c[0], c[1], p, s)
		}
	}
	if _, _, ok := identityFromKey([]byte("short")); ok {
		t.Fatal("identityFromKey accepted a short key")
	}
}

func TestKeyRangeScopesOneQueue(t *testing.T) {
	lo, hi := keyRange(itemPrefix("jobs"))

	inside := itemKey("jobs", 12345, secondarySentinel)
	if bytes.Compare(inside, lo) < 0 || bytes.Compare(inside, hi) >= 0 {
		t.Fatal("item key falls outside its queue's scan range")
	}

	foreign := itemKey("jobs2", 12345, secondarySentinel)
	if bytes.Compare(foreign, lo) >= 0 && bytes.Compare(foreign, hi) < 0 {
		t.Fatal("foreign queue key falls inside the scan range")
	}

	meta := metaKey("jobs")
	if bytes.Compare(meta, lo) >= 0 && bytes.Compare(meta, hi) < 0 {
		t.Fatal("meta key falls inside the item scan range")
	}
}
