// Package store provides durable storage for the reading engine.
//
// Two tables back the engine's contract:
//
//   - snapshots: a per-key last-write-wins KV holding the serialized
//     collections (progress ledger, backlog, tag stats). Writes are atomic
//     per key; there are no cross-key transactions, by design — the engine
//     keeps every operation idempotent instead.
//
//   - events: the append-only mutation journal, ordered by the engine's
//     logical clock seq. Duplicate event IDs are silently ignored so a
//     retried write-through cannot double-journal.
//
// SQLite with WAL mode; a single writer, per the engine's concurrency
// model. The store knows nothing about the shapes it persists beyond the
// journal event columns.
package store
