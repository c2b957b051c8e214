package models

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// SortDirection represents the sort direction.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Timestamp is a point in time persisted as Unix milliseconds.
// The zero Timestamp encodes as 0 and 0 decodes back to the zero value.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, truncated to millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.UnixMilli(t.UnixMilli())}
}

// Millis returns the Unix millisecond value, 0 for the zero Timestamp.
func (t Timestamp) Millis() int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Millis(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. Fractional milliseconds are
// truncated.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}

	*t = TimestampFromMillis(int64(ms))
	return nil
}

// TimestampFromMillis converts Unix milliseconds to a Timestamp.
func TimestampFromMillis(ms int64) Timestamp {
	if ms == 0 {
		return Timestamp{}
	}
	return Timestamp{Time: time.UnixMilli(ms)}
}
