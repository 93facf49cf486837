package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// dateOnlyLayout is the calendar-date form accepted from form inputs and seed data
const dateOnlyLayout = "2006-01-02"

// Date is a calendar date or instant serialized as an ISO-8601 string.
// The zero value means the date was not provided. Comparisons use the
// promoted time.Time methods, so pass the other side's Time field:
// d.Before(other.Time), d.Equal(other.Time).
type Date struct {
	time.Time
}

// NewDate wraps t as a Date normalized to UTC
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC()}
}

// MustParseDate parses an ISO-8601 date or date-time and panics on failure.
// Intended for seed data and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses RFC 3339 timestamps (with or without fractional seconds)
// and bare YYYY-MM-DD calendar dates
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return NewDate(t), nil
}

// MarshalJSON writes the date as an RFC 3339 string, or null when unset
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON reconstructs the date from its serialized string form
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
