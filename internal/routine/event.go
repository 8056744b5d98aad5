package routine

import "time"

// Op names a mutating engine operation in the event journal.
type Op string

const (
	OpAddToHistory Op = "add_to_history"
	OpMarkRead     Op = "mark_read"
	OpMarkUnread   Op = "mark_unread"
	OpDelay        Op = "delay"
	OpRemoveDelay  Op = "remove_delay"
	OpSweep        Op = "sweep"
	OpReset        Op = "reset"
)

// Event is one entry in the append-only mutation journal. Events exist for
// auditing and debugging; the snapshot collections, not the journal, are the
// system of record.
type Event struct {
	// ID is a UUIDv7, time-sortable for trace readability.
	ID string `json:"id"`

	// Seq is the logical-clock stamp. Journal order is Seq order; wall-clock
	// timestamps are never used for ordering.
	Seq int64 `json:"seq"`

	Op        Op        `json:"op"`
	ArticleID string    `json:"article_id,omitempty"`
	At        time.Time `json:"at"`

	// Detail carries op-specific context, e.g. swept article IDs.
	Detail string `json:"detail,omitempty"`
}
