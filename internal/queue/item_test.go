package queue

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"testing"
	"time"
)

func TestItemUnmarshalNormalizesTimestamps(t *testing.T) {
	var it Item
	raw := `{"datetime":"2024-06-01T12:00:00.123456789Z","datetime_secondary":"2024-06-01T14:00:00+02:00","message":"job1"}`
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	wantPrimary := time.Date(2024, 6, 1, 12, 0, 0, 123000000, time.UTC).UnixMilli()
	if it.Primary != wantPrimary {
		t.Fatalf("primary = %d, want %d (millisecond truncation)", it.Primary, wantPrimary)
	}
	wantSecondary := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	if !it.HasSecondary || it.Secondary != wantSecondary {
		t.Fatalf("secondary = (%d,%v), want (%d,true) after UTC normalization", it.Secondary, it.HasSecondary, wantSecondary)
	}
	if it.Message != "job1" {
		t.Fatalf("message = %q", it.Message)
	}
}

func TestItemUnmarshalDefaults(t *testing.T) {
	var it Item
	if err := json.Unmarshal([]byte(`{"datetime":"2024-06-01T12:00:00Z"}`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.HasSecondary {
		t.Fatal("secondary should be unset")
	}
	if it.Message != "" {
		t.Fatalf("message should default to empty, got %q", it.Message)
	}
}

func TestItemUnmarshalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing datetime", `{"message":"x"}`},
		{"empty datetime", `{"datetime":""}`},
		{"not a timestamp", `{"datetime":"tomorrow"}`},
		{"date only", `{"datetime":"2024-06-01"}`},
		{"numeric datetime", `{"datetime":1717243200}`},
		{"bad secondary", `{"datetime":"2024-06-01T12:00:00Z","datetime_secondary":"later"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var it Item
			err := json.Unmarshal([]byte(tc.raw), &it)
			if !errors.Is(err, ErrBadItem) {
				t.Fatalf("err = %v, want ErrBadItem", err)
			}
		})
	}
}

func TestItemMarshalJSON(t *testing.T) {
	sec := time.Date(2024, 6, 1, 13, 30, 0, 0, time.UTC)
	it := NewItem(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), &sec, "job1")
	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"datetime":"2024-06-01T12:00:00.000Z","datetime_secondary":"2024-06-01T13:30:00.000Z","message":"job1"}`
	if string(b) != want {
		t.Fatalf("marshal = %s, want %s", b, want)
	}

	bare := NewItem(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), nil, "")
	b, err = json.Marshal(bare)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want = `{"datetime":"2024-06-01T12:00:00.000Z","message":""}`
	if string(b) != want {
		t.Fatalf("marshal = %s, want %s", b, want)
	}
}

func TestItemMarshalRoundTrip(t *testing.T) {
	sec := time.Date(2030, 1, 2, 3, 4, 5, 678000000, time.UTC)
	in := NewItem(time.Date(1969, 12, 31, 23, 59, 59, 999000000, time.UTC), &sec, "wrap")
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Item
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestItemMarshalXML(t *testing.T) {
	it := NewItem(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), nil, "job1")
	b, err := xml.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `<item><datetime>2024-06-01T12:00:00.000Z</datetime><message>job1</message></item>`
	if string(b) != want {
		t.Fatalf("marshal = %s, want %s", b, want)
	}
}

func TestNewItemTruncatesToMilliseconds(t *testing.T) {
	it := NewItem(time.Date(2024, 6, 1, 12, 0, 0, 123999999, time.UTC), nil, "")
	if got := it.PrimaryTime().Format(wireTimeLayout); got != "2024-06-01T12:00:00.123Z" {
		t.Fatalf("primary rendered as %q", got)
	}
}
