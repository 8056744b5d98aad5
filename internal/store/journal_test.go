package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kindling/internal/routine"
)

func testEvent(id string, seq int64, op routine.Op, articleID string) routine.Event {
	return routine.Event{
		ID:        id,
		Seq:       seq,
		Op:        op,
		ArticleID: articleID,
		At:        time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
	}
}

// TestAppendEvent_Idempotent tests duplicate-ID suppression.
func TestAppendEvent_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-1", 1, routine.OpMarkRead, "a1")))
	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-1", 1, routine.OpMarkRead, "a1")))

	events, err := s.ListEvents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

// TestListEvents_SeqOrder tests ordering regardless of insert order.
func TestListEvents_SeqOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-2", 2, routine.OpDelay, "a2")))
	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-1", 1, routine.OpAddToHistory, "a1")))
	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-3", 3, routine.OpSweep, "")))

	events, err := s.ListEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(1), events[0].Seq)
	assert.Equal(t, int64(3), events[2].Seq)
	assert.Equal(t, routine.OpAddToHistory, events[0].Op)
}

// TestListEvents_Limit tests that limit keeps the newest events,
// still oldest-first.
func TestListEvents_Limit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, s.AppendEvent(ctx, testEvent(
			"ev-"+string(rune('0'+i)), i, routine.OpMarkRead, "a1")))
	}

	events, err := s.ListEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(4), events[0].Seq)
	assert.Equal(t, int64(5), events[1].Seq)
}

// TestLastSeq tests clock-resume support.
func TestLastSeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	last, err := s.LastSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last, "empty journal")

	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-1", 1, routine.OpMarkRead, "a1")))
	require.NoError(t, s.AppendEvent(ctx, testEvent("ev-7", 7, routine.OpSweep, "")))

	last, err = s.LastSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), last)
}

// TestJournal_RoundTripFields tests that every event field survives storage.
func TestJournal_RoundTripFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := routine.Event{
		ID:        "ev-1",
		Seq:       1,
		Op:        routine.OpSweep,
		ArticleID: "",
		At:        time.Date(2024, 2, 1, 23, 59, 59, 123000000, time.UTC),
		Detail:    "a1,a2",
	}
	require.NoError(t, s.AppendEvent(ctx, in))

	events, err := s.ListEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, in.ID, events[0].ID)
	assert.Equal(t, in.Op, events[0].Op)
	assert.Equal(t, in.Detail, events[0].Detail)
	assert.True(t, in.At.Equal(events[0].At))
}
