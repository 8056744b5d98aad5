package engine

import (
	"context"
	"time"

	"github.com/roach88/kindling/internal/routine"
)

// Mode controls which operations the engine permits.
type Mode int

const (
	// ModeProduction refuses development-only operations (MarkUnread, Reset).
	ModeProduction Mode = iota

	// ModeDevelopment additionally permits clearing read state, for manual
	// testing against a scratch database.
	ModeDevelopment
)

// String returns the mode name as it appears in config files.
func (m Mode) String() string {
	if m == ModeDevelopment {
		return "development"
	}
	return "production"
}

// Storage keys for the persisted collections.
const (
	KeyProgressLedger = "progress_ledger"
	KeyBacklog        = "backlog"
	KeyTagStats       = "tag_stats"
)

// Store is the durable-store contract the engine writes through to.
//
// Per-key writes are atomic and last-write-wins; there are no cross-key
// transactions, so the ledger and backlog are flushed independently and
// every operation is safe to re-apply.
type Store interface {
	// Get returns the value for key, with ok=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// AppendEvent appends to the mutation journal. Appending an event whose
	// ID already exists is a no-op.
	AppendEvent(ctx context.Context, ev routine.Event) error

	// ListEvents returns journal events in seq order, newest last.
	// limit <= 0 means no limit.
	ListEvents(ctx context.Context, limit int) ([]routine.Event, error)

	// LastSeq returns the highest seq in the journal, or 0 when empty.
	LastSeq(ctx context.Context) (int64, error)
}

// Engine owns the progress ledger, the backlog, and the tag statistics.
//
// Construct with New, then Load to hydrate the snapshot from the store.
// The zero Engine is not usable.
type Engine struct {
	store Store
	mode  Mode
	clock *Clock
	idgen IDGenerator

	// records holds the ledger in insertion order; index maps article ID to
	// its position. Insertion order is preserved for persistence but carries
	// no semantics.
	records []routine.ProgressRecord
	index   map[string]int

	// backlog is ordered most-recently-delayed first, length <= 2.
	backlog []routine.BacklogEntry

	tags routine.TagStats
}

// Option configures an Engine.
type Option func(*Engine)

// WithMode sets the operating mode. The default is ModeProduction.
func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithIDGenerator replaces the journal ID generator. Tests use
// NewFixedGenerator for deterministic journals.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.idgen = g }
}

// New creates an engine over the given store. Call Load before use.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		mode:  ModeProduction,
		clock: NewClock(),
		idgen: UUIDv7Generator{},
		index: make(map[string]int),
		tags:  routine.TagStats{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the operating mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Load hydrates the in-memory snapshot from the store and resumes the
// logical clock from the journal's last position. Absent keys load as empty
// collections.
func (e *Engine) Load(ctx context.Context) error {
	records, err := e.loadLedger(ctx)
	if err != nil {
		return err
	}
	backlog, err := e.loadBacklog(ctx)
	if err != nil {
		return err
	}
	tags, err := e.loadTags(ctx)
	if err != nil {
		return err
	}

	last, err := e.store.LastSeq(ctx)
	if err != nil {
		return NewStorageFailureError("load", err)
	}

	e.records = records
	e.index = make(map[string]int, len(records))
	for i, r := range records {
		e.index[r.ArticleID] = i
	}
	e.backlog = backlog
	e.tags = tags
	e.clock = NewClockAt(last)
	return nil
}

// Flush writes all collections through to the store. Individual operations
// flush only what they touched; Flush exists for shutdown and for recovery
// after a reported storage failure.
func (e *Engine) Flush(ctx context.Context) error {
	if err := e.flushLedger(ctx); err != nil {
		return err
	}
	if err := e.flushBacklog(ctx); err != nil {
		return err
	}
	return e.flushTags(ctx)
}

// ComputeStreak derives the user-facing streak number for today from the
// current snapshot. Recomputed fresh on every call: a backlog sweep may
// lower the result with no new reads.
func (e *Engine) ComputeStreak(today routine.Day) int {
	return routine.ComputeStreak(e.records, e.backlog, today)
}

// TagStats returns a copy of the tag counters.
func (e *Engine) TagStats() routine.TagStats {
	return e.tags.Clone()
}

// History returns a copy of the ledger in insertion order.
func (e *Engine) History() []routine.ProgressRecord {
	out := make([]routine.ProgressRecord, len(e.records))
	copy(out, e.records)
	return out
}

// Journal returns the mutation journal in seq order.
// limit <= 0 means no limit.
func (e *Engine) Journal(ctx context.Context, limit int) ([]routine.Event, error) {
	events, err := e.store.ListEvents(ctx, limit)
	if err != nil {
		return nil, NewStorageFailureError("journal", err)
	}
	return events, nil
}

// Reset clears the ledger, backlog, and tag statistics and deletes the
// persisted collections. Development mode only: this is the one path that
// discards recorded progress.
func (e *Engine) Reset(ctx context.Context, now time.Time) error {
	if e.mode != ModeDevelopment {
		return NewNotPermittedError("reset", "")
	}

	e.records = nil
	e.index = make(map[string]int)
	e.backlog = nil
	e.tags = routine.TagStats{}

	if err := e.appendEvent(ctx, routine.OpReset, "", now, ""); err != nil {
		return err
	}
	for _, key := range []string{KeyProgressLedger, KeyBacklog, KeyTagStats} {
		if err := e.store.Delete(ctx, key); err != nil {
			return NewStorageFailureError("reset", err)
		}
	}
	return nil
}

// appendEvent stamps and journals one mutation.
func (e *Engine) appendEvent(ctx context.Context, op routine.Op, articleID string, at time.Time, detail string) error {
	ev := routine.Event{
		ID:        e.idgen.Generate(),
		Seq:       e.clock.Next(),
		Op:        op,
		ArticleID: articleID,
		At:        at.UTC(),
		Detail:    detail,
	}
	if err := e.store.AppendEvent(ctx, ev); err != nil {
		return NewStorageFailureError(string(op), err)
	}
	return nil
}
