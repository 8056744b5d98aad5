package routine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDay_Valid tests parsing of well-formed dates.
func TestParseDay_Valid(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

// TestParseDay_Invalid tests rejection of malformed and locale dates.
func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "02/29/2024", "2024-2-9", "2024-13-01", "yesterday"} {
		_, err := ParseDay(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

// TestDayOf_UTC tests that the calendar date is taken in UTC regardless of
// the instant's zone.
func TestDayOf_UTC(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*3600)
	// 2024-03-02 07:00 +10:00 is 2024-03-01 21:00 UTC.
	instant := time.Date(2024, 3, 2, 7, 0, 0, 0, zone)
	assert.Equal(t, MustParseDay("2024-03-01"), DayOf(instant))
}

// TestDay_AddDays tests arithmetic across month and year boundaries.
func TestDay_AddDays(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2024-01-05", 1, "2024-01-06"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-01-10", -10, "2023-12-31"},
	}
	for _, tt := range tests {
		got := MustParseDay(tt.start).AddDays(tt.n)
		assert.Equal(t, tt.want, got.String(), "%s + %d days", tt.start, tt.n)
	}
}

// TestDay_DaysSince tests whole-day differences.
func TestDay_DaysSince(t *testing.T) {
	a := MustParseDay("2024-01-05")
	b := MustParseDay("2024-01-03")
	assert.Equal(t, 2, a.DaysSince(b))
	assert.Equal(t, -2, b.DaysSince(a))
	assert.Equal(t, 0, a.DaysSince(a))
}

// TestDay_ZeroValue tests that the zero Day means "absent".
func TestDay_ZeroValue(t *testing.T) {
	var d Day
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, MustParseDay("2024-01-01").IsZero())
}

// TestDay_JSONRoundTrip tests wire-format encoding.
func TestDay_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(MustParseDay("2024-06-15"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-15"`, string(data))

	var d Day
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, MustParseDay("2024-06-15"), d)
}

// TestDay_JSONAbsent tests that "" and null decode to the zero Day.
func TestDay_JSONAbsent(t *testing.T) {
	var d Day
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	d = MustParseDay("2024-01-01")
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-day"`), &d))
}
