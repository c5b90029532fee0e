package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a string does not parse as HH:MM.
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrTimeOutOfRange is returned when an arithmetic result leaves the 24h day.
	ErrTimeOutOfRange = errors.New("types: time of day out of range")
)

// TimeString is a wall-clock time of day. Internally it is minutes since
// midnight; it renders and parses as "HH:MM". Comparisons are numeric so
// formatting quirks can never change slot semantics.
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString extracts the time of day from t, truncated to the minute.
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, m)
	}
	return TimeString{minutes: m, valid: true}, nil
}

// NewTimeStringFromString parses "HH:MM". A trailing ":SS" part is accepted
// and dropped, since Postgres TIME columns scan as "HH:MM:SS".
func NewTimeStringFromString(s string) (TimeString, error) {
	var h, m int
	var sec int
	if n, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil || n < 2 {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString{minutes: h*60 + m, valid: true}, nil
}

// String renders the time as "HH:MM". The zero value renders as "00:00".
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() int {
	return t.minutes
}

// IsZero reports whether the value was never set.
func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate confirms the value was constructed through one of the parsers.
func (t TimeString) Validate() error {
	if !t.valid {
		return ErrInvalidTimeString
	}
	return nil
}

// Equal reports whether both values name the same minute of the day.
func (t TimeString) Equal(other TimeString) bool {
	return t.valid && other.valid && t.minutes == other.minutes
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// AddMinutes returns the time d minutes later. Crossing midnight is an error:
// availability windows never wrap a day.
func (t TimeString) AddMinutes(d int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + d)
}

// Scan implements sql.Scanner for TIME and text columns.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}
