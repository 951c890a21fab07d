package schema

import (
	"encoding/json"
	"strings"
	"time"
)

// DateTime is a nullable timestamp as the record store serves it: an
// ISO-8601 string on the wire, with the empty string meaning unset.
type DateTime struct {
	time.Time
}

// wire formats accepted when decoding; the record store emits a space
// between date and time, RFC3339 is accepted for robustness
var wireFormats = []string{
	"2006-01-02 15:04:05.000Z",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// IsSet reports whether the timestamp carries a value
func (d DateTime) IsSet() bool {
	return !d.Time.IsZero()
}

// TimePtr returns the native time, or nil when unset
func (d DateTime) TimePtr() *time.Time {
	if !d.IsSet() {
		return nil
	}
	t := d.Time
	return &t
}

// NewDateTime wraps a native time into a wire timestamp
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// String renders the wire representation, empty when unset
func (d DateTime) String() string {
	if !d.IsSet() {
		return ""
	}
	return d.Time.UTC().Format(time.RFC3339)
}

// MarshalJSON implements json.Marshaler
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range wireFormats {
		t, err := time.Parse(layout, raw)
		if err == nil {
			d.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}
