package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// Used for slot times where only the time component matters.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only HH:MM
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates a "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// IsZero returns true if the TimeString is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a correct "HH:MM" time
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time string format: %q, expected HH:MM", string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q, hours must be numeric", string(t))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q, minutes must be numeric", string(t))
	}

	if hours < 0 || hours > 23 {
		return fmt.Errorf("invalid time string: hours out of range in %q", string(t))
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("invalid time string: minutes out of range in %q", string(t))
	}

	return nil
}

// Minutes returns the time as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parts := strings.Split(string(t), ":")
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes, nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore returns true if t is strictly before other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly after other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// MarshalJSON implements json.Marshaler
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = TimeString(s)
	return nil
}

// Value implements driver.Valuer for database storage
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner
// Postgres returns TIME columns as "HH:MM:SS", so the seconds part is trimmed.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = truncateSeconds(v)
	case []byte:
		*t = truncateSeconds(string(v))
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}

func truncateSeconds(s string) TimeString {
	if len(s) >= 5 {
		return TimeString(s[:5])
	}
	return TimeString(s)
}
