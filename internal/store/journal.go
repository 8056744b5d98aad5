package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/kindling/internal/routine"
)

// AppendEvent inserts a journal event.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - a retried write-through
// cannot journal the same mutation twice.
func (s *Store) AppendEvent(ctx context.Context, ev routine.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, seq, op, article_id, at, detail)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		ev.ID,
		ev.Seq,
		string(ev.Op),
		ev.ArticleID,
		ev.At.UTC().Format(time.RFC3339Nano),
		ev.Detail,
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// ListEvents returns journal events in seq order, newest last.
// limit <= 0 means no limit; otherwise the newest limit events are
// returned, still oldest-first.
func (s *Store) ListEvents(ctx context.Context, limit int) ([]routine.Event, error) {
	query := `
		SELECT id, seq, op, article_id, at, detail
		FROM events ORDER BY seq
	`
	args := []any{}
	if limit > 0 {
		query = `
			SELECT id, seq, op, article_id, at, detail FROM (
				SELECT id, seq, op, article_id, at, detail
				FROM events ORDER BY seq DESC LIMIT ?
			) ORDER BY seq
		`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []routine.Event
	for rows.Next() {
		var (
			ev routine.Event
			op string
			at string
		)
		if err := rows.Scan(&ev.ID, &ev.Seq, &op, &ev.ArticleID, &at, &ev.Detail); err != nil {
			return nil, fmt.Errorf("list events: scan: %w", err)
		}
		ev.Op = routine.Op(op)
		ev.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("list events: parse at %q: %w", at, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// LastSeq returns the highest journal seq, or 0 when the journal is empty.
// The engine resumes its logical clock from here on load.
func (s *Store) LastSeq(ctx context.Context) (int64, error) {
	var last int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM events
	`).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("last seq: %w", err)
	}
	return last, nil
}
