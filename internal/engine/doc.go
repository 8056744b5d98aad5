// Package engine implements the daily-reading progress and streak engine.
//
// The engine reconciles an append-only history of "article read" events and
// a small delayed-article backlog into a single, stable, replayable streak
// number. The progress ledger and the backlog are the system of record; the
// routine-day inference and the streak calculator (package routine) are pure
// functions evaluated on demand from a full in-memory snapshot, never cached
// as authoritative.
//
// ARCHITECTURE:
//
// Single-Writer, Memory-First:
// All public operations are short, synchronous transformations of the
// in-memory snapshot, followed by a write-through of the affected
// collections to the durable store. A failed write-through reports a
// STORAGE_FAILURE but does not roll back memory: every mutation is
// idempotent, so re-applying it once the store recovers converges on the
// same state. Two calls mutating the same article must be serialized by the
// caller; the engine provides no locking of its own.
//
// No Ambient Time:
// Every time-dependent operation takes "now" or "today" as an explicit
// parameter. The engine never reads the wall clock, which keeps all
// behavior reproducible in tests.
//
// Invariants protected here:
//   - one ProgressRecord per article ID (insertion deduplicates)
//   - a read record is immutable in production (MarkRead is idempotent,
//     MarkUnread is refused outside development mode)
//   - ReadAt is set exactly once, when IsRead transitions to true
//   - at most two concurrent backlog entries, unique by article ID
//   - tag counts only ever grow, except on an explicit development reset
//
// Every successful mutation also appends an event to the journal: a
// UUIDv7-identified record stamped by the monotonic logical clock. The
// journal is diagnostic; the snapshots are authoritative.
package engine
