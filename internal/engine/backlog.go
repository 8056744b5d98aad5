package engine

import (
	"context"
	"strings"
	"time"

	"github.com/roach88/kindling/internal/routine"
)

// Delay postpones an article past its routine day without losing streak
// credit. Refused with ALREADY_DELAYED when the article is already in the
// backlog and BACKLOG_FULL when two entries are live; a refusal never
// mutates state.
func (e *Engine) Delay(ctx context.Context, article routine.Article, now time.Time) error {
	for _, entry := range e.backlog {
		if entry.Article.ID == article.ID {
			return NewAlreadyDelayedError(article.ID)
		}
	}
	if len(e.backlog) >= routine.MaxBacklogEntries {
		return NewBacklogFullError(article.ID, routine.MaxBacklogEntries)
	}

	entry := routine.BacklogEntry{
		Article:            article,
		DelayedAt:          now.UTC(),
		OriginalRoutineDay: article.RoutineDay,
	}
	// Most-recently-delayed first.
	e.backlog = append([]routine.BacklogEntry{entry}, e.backlog...)

	if err := e.appendEvent(ctx, routine.OpDelay, article.ID, now, article.RoutineDay.String()); err != nil {
		return err
	}
	return e.flushBacklog(ctx)
}

// RemoveFromBacklog drops the entry for the article, surrendering its
// streak credit. A no-op when the article is not delayed.
func (e *Engine) RemoveFromBacklog(ctx context.Context, articleID string, now time.Time) error {
	if _, found := e.takeBacklogEntry(articleID); !found {
		return nil
	}

	if err := e.appendEvent(ctx, routine.OpRemoveDelay, articleID, now, ""); err != nil {
		return err
	}
	return e.flushBacklog(ctx)
}

// SweepExpired removes every backlog entry aged two or more calendar days
// and returns the removed article IDs. The engine has no background clock:
// callers invoke the sweep at session start and on resume.
func (e *Engine) SweepExpired(ctx context.Context, now time.Time) ([]string, error) {
	var removed []string
	kept := e.backlog[:0]
	for _, entry := range e.backlog {
		if entry.Expired(now) {
			removed = append(removed, entry.Article.ID)
			continue
		}
		kept = append(kept, entry)
	}
	if len(removed) == 0 {
		return nil, nil
	}
	e.backlog = kept

	if err := e.appendEvent(ctx, routine.OpSweep, "", now, strings.Join(removed, ",")); err != nil {
		return removed, err
	}
	if err := e.flushBacklog(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}

// Backlog returns a copy of the backlog, most-recently-delayed first.
func (e *Engine) Backlog() []routine.BacklogEntry {
	out := make([]routine.BacklogEntry, len(e.backlog))
	copy(out, e.backlog)
	return out
}

// takeBacklogEntry removes and returns the entry for the article.
func (e *Engine) takeBacklogEntry(articleID string) (routine.BacklogEntry, bool) {
	for i, entry := range e.backlog {
		if entry.Article.ID == articleID {
			e.backlog = append(e.backlog[:i], e.backlog[i+1:]...)
			return entry, true
		}
	}
	return routine.BacklogEntry{}, false
}
