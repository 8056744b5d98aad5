package routine

import (
	"fmt"
	"time"
)

// dayLayout is the only accepted wire format for routine days.
const dayLayout = "2006-01-02"

// Day is a UTC calendar date with day precision.
//
// The zero value means "absent" (legacy records without an explicit routine
// day). Day is comparable and safe for use as a map key.
type Day struct {
	year  int
	month time.Month
	day   int
}

// ParseDay parses a "YYYY-MM-DD" string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// MustParseDay parses a "YYYY-MM-DD" string and panics on error.
// Intended for tests and compile-time-constant dates.
func MustParseDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DayOf returns the UTC calendar date of an instant.
func DayOf(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{year: y, month: m, day: d}
}

// IsZero reports whether the day is absent.
func (d Day) IsZero() bool {
	return d == Day{}
}

// String formats the day as "YYYY-MM-DD". The zero Day formats as "".
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(dayLayout)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day shifted by n calendar days (n may be negative).
// time.Date normalizes month and year boundaries.
func (d Day) AddDays(n int) Day {
	return DayOf(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC))
}

// Prev returns the previous calendar day.
func (d Day) Prev() Day {
	return d.AddDays(-1)
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.Time().Before(other.Time())
}

// DaysSince returns the number of whole calendar days from other to d.
// Negative if d is earlier than other.
func (d Day) DaysSince(other Day) int {
	return int(d.Time().Sub(other.Time()) / (24 * time.Hour))
}

// MarshalJSON encodes the day as a "YYYY-MM-DD" string, or "" when absent.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. "" and null decode to the
// zero Day so legacy snapshots without routine days load cleanly.
func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		*d = Day{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("unmarshal day: invalid JSON string %s", s)
	}
	parsed, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return fmt.Errorf("unmarshal day: %w", err)
	}
	*d = parsed
	return nil
}
