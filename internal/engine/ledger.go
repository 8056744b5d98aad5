package engine

import (
	"context"
	"time"

	"github.com/roach88/kindling/internal/routine"
)

// AddToHistory records that an article became visible to the user. A no-op
// when the article is already present: one ProgressRecord per article ID.
func (e *Engine) AddToHistory(ctx context.Context, articleID, title, url string, now time.Time) error {
	if articleID == "" {
		return nil
	}
	if _, ok := e.index[articleID]; ok {
		return nil
	}

	e.index[articleID] = len(e.records)
	e.records = append(e.records, routine.ProgressRecord{
		ArticleID:    articleID,
		ArticleTitle: title,
		ArticleURL:   url,
	})

	if err := e.appendEvent(ctx, routine.OpAddToHistory, articleID, now, ""); err != nil {
		return err
	}
	return e.flushLedger(ctx)
}

// MarkRead transitions a record to read.
//
// Silent no-op when the record does not exist or is already read: the
// read-once invariant makes re-application harmless, which is exactly what
// the write-through recovery path relies on.
//
// On success ReadAt is set to now (once, never modified after), the routine
// days are stored, tag counters grow, and a matching backlog entry is
// promoted away. When the caller passes a zero originalRoutineDay and the
// article was sitting in the backlog, the entry's original due day is used.
func (e *Engine) MarkRead(ctx context.Context, articleID string, tags []string, routineDay, originalRoutineDay routine.Day, now time.Time) error {
	i, ok := e.index[articleID]
	if !ok {
		return nil
	}
	if e.records[i].IsRead {
		return nil
	}

	backlogChanged := false
	if entry, found := e.takeBacklogEntry(articleID); found {
		backlogChanged = true
		if originalRoutineDay.IsZero() {
			originalRoutineDay = entry.OriginalRoutineDay
		}
	}

	readAt := now.UTC()
	e.records[i].IsRead = true
	e.records[i].ReadAt = &readAt
	e.records[i].RoutineDay = routineDay
	e.records[i].OriginalRoutineDay = originalRoutineDay
	e.tags.Add(tags...)

	if err := e.appendEvent(ctx, routine.OpMarkRead, articleID, now, routineDay.String()); err != nil {
		return err
	}
	if err := e.flushLedger(ctx); err != nil {
		return err
	}
	if backlogChanged {
		if err := e.flushBacklog(ctx); err != nil {
			return err
		}
	}
	return e.flushTags(ctx)
}

// MarkUnread clears the read state of a record. Development mode only: in
// production the read-once invariant holds and the call is refused with
// NOT_PERMITTED rather than silently ignored, since swallowing a debug
// action would be confusing during testing.
//
// Missing records remain a silent no-op even in development mode. Tag
// counters are not decremented; they are monotonic while the engine lives.
func (e *Engine) MarkUnread(ctx context.Context, articleID string, now time.Time) error {
	if e.mode != ModeDevelopment {
		return NewNotPermittedError("mark unread", articleID)
	}

	i, ok := e.index[articleID]
	if !ok || !e.records[i].IsRead {
		return nil
	}

	e.records[i].IsRead = false
	e.records[i].ReadAt = nil

	if err := e.appendEvent(ctx, routine.OpMarkUnread, articleID, now, ""); err != nil {
		return err
	}
	return e.flushLedger(ctx)
}

// GetProgress returns a copy of the record, or nil when unknown.
func (e *Engine) GetProgress(articleID string) *routine.ProgressRecord {
	i, ok := e.index[articleID]
	if !ok {
		return nil
	}
	r := e.records[i]
	return &r
}

// IsReadToday reports whether the article was read on the caller's today.
func (e *Engine) IsReadToday(articleID string, today routine.Day) bool {
	i, ok := e.index[articleID]
	if !ok {
		return false
	}
	return e.records[i].ReadDay() == today
}
