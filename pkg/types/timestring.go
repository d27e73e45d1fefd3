package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// timePattern matches the fixed-width HH:MM format (00:00 - 23:59)
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ErrInvalidTimeFormat is returned when a value is not a valid "HH:MM" time
var ErrInvalidTimeFormat = errors.New("invalid time string format")

// TimeString represents a time of day in fixed-width "HH:MM" format.
// Because the format is fixed-width, lexicographic comparison of the
// underlying strings orders times chronologically.
type TimeString string

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeString builds a TimeString from the clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String implements fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Scan implements sql.Scanner, accepting TIME, VARCHAR and []byte columns
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	// Колонки TIME приходят как "HH:MM:SS" - обрезаем секунды
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
