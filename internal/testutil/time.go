package testutil

import "time"

// MustInstant parses an RFC 3339 timestamp and panics on error. For
// compile-time-constant test inputs only.
func MustInstant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Morning returns 08:00 UTC on the given "YYYY-MM-DD" day, a convenient
// read time for scenarios.
func Morning(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t.Add(8 * time.Hour)
}
