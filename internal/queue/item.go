package queue

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"
)

// wireTimeLayout renders timestamps as RFC3339 UTC with millisecond
// precision, matching the precision items are stored at.
const wireTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Item is one queue entry. Primary and Secondary are Unix milliseconds
// in UTC; within a queue the pair (Primary, Secondary) is the item's
// identity. Items without a secondary timestamp have HasSecondary unset
// and sort before any item that shares their primary timestamp.
type Item struct {
	Primary      int64
	Secondary    int64
	HasSecondary bool
	Message      string
}

// NewItem builds an item from wall-clock times, normalizing both to UTC
// millisecond precision. secondary may be nil.
func NewItem(primary time.Time, secondary *time.Time, message string) Item {
	it := Item{Primary: primary.UnixMilli(), Message: message}
	if secondary != nil {
		it.Secondary = secondary.UnixMilli()
		it.HasSecondary = true
	}
	return it
}

// PrimaryTime returns the primary timestamp as a UTC wall-clock time.
func (it Item) PrimaryTime() time.Time {
	return time.UnixMilli(it.Primary).UTC()
}

// SecondaryTime returns the secondary timestamp and whether it is set.
func (it Item) SecondaryTime() (time.Time, bool) {
	if !it.HasSecondary {
		return time.Time{}, false
	}
	return time.UnixMilli(it.Secondary).UTC(), true
}

// identity returns the key pair the item is stored under. An absent
// secondary timestamp maps to the sentinel so it sorts first.
func (it Item) identity() (primary, secondary int64) {
	if it.HasSecondary {
		return it.Primary, it.Secondary
	}
	return it.Primary, secondarySentinel
}

// wireItem is the JSON and XML shape of an item on the HTTP surface.
type wireItem struct {
	XMLName           xml.Name `json:"-" xml:"item"`
	Datetime          string   `json:"datetime" xml:"datetime"`
	DatetimeSecondary *string  `json:"datetime_secondary,omitempty" xml:"datetime_secondary,omitempty"`
	Message           *string  `json:"message" xml:"message"`
}

func (it Item) wire() wireItem {
	w := wireItem{
		Datetime: it.PrimaryTime().Format(wireTimeLayout),
		Message:  &it.Message,
	}
	if s, ok := it.SecondaryTime(); ok {
		f := s.Format(wireTimeLayout)
		w.DatetimeSecondary = &f
	}
	return w
}

func (it *Item) fromWire(w wireItem) error {
	if w.Datetime == "" {
		return fmt.Errorf("%w: datetime is required", ErrBadItem)
	}
	t, err := time.Parse(time.RFC3339, w.Datetime)
	if err != nil {
		return fmt.Errorf("%w: datetime: %v", ErrBadItem, err)
	}
	*it = Item{Primary: t.UnixMilli()}
	if w.DatetimeSecondary != nil {
		s, err := time.Parse(time.RFC3339, *w.DatetimeSecondary)
		if err != nil {
			return fmt.Errorf("%w: datetime_secondary: %v", ErrBadItem, err)
		}
		it.Secondary = s.UnixMilli()
		it.HasSecondary = true
	}
	if w.Message != nil {
		it.Message = *w.Message
	}
	return nil
}

// MarshalJSON renders the wire shape with RFC3339 UTC timestamps.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.wire())
}

// UnmarshalJSON parses the wire shape. Timestamps must be RFC3339;
// offsets are accepted and normalized to UTC millisecond precision.
func (it *Item) UnmarshalJSON(b []byte) error {
	var w wireItem
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrBadItem, err)
	}
	return it.fromWire(w)
}

// MarshalXML renders the same wire shape as <item> for XML responses.
func (it Item) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return enc.EncodeElement(it.wire(), xml.StartElement{Name: xml.Name{Local: "item"}})
}
