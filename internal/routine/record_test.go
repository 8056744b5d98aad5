package routine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBacklogEntry_Expired tests calendar-day expiry.
func TestBacklogEntry_Expired(t *testing.T) {
	delayedAt := MustParseDay("2024-01-01").Time().Add(23 * time.Hour)
	entry := BacklogEntry{DelayedAt: delayedAt}

	assert.False(t, entry.Expired(MustParseDay("2024-01-02").Time()))
	assert.True(t, entry.Expired(MustParseDay("2024-01-03").Time()), "expires at any time two calendar days later")
	assert.True(t, entry.Expired(MustParseDay("2024-02-01").Time()))
}

// TestProgressRecord_ReadDay tests read-day extraction.
func TestProgressRecord_ReadDay(t *testing.T) {
	assert.True(t, ProgressRecord{ArticleID: "a"}.ReadDay().IsZero())

	at := time.Date(2024, 5, 1, 22, 15, 0, 0, time.UTC)
	r := ProgressRecord{ArticleID: "a", IsRead: true, ReadAt: &at}
	assert.Equal(t, MustParseDay("2024-05-01"), r.ReadDay())
}

// TestProgressRecord_JSONRoundTrip tests that legacy snapshots without
// routine days load cleanly.
func TestProgressRecord_JSONRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	in := ProgressRecord{
		ArticleID:    "a1",
		ArticleTitle: "On Reading",
		IsRead:       true,
		ReadAt:       &at,
		RoutineDay:   MustParseDay("2024-05-01"),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out ProgressRecord
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.ArticleID, out.ArticleID)
	assert.Equal(t, in.RoutineDay, out.RoutineDay)
	assert.True(t, out.OriginalRoutineDay.IsZero())
	require.NotNil(t, out.ReadAt)
	assert.True(t, at.Equal(*out.ReadAt))
}
