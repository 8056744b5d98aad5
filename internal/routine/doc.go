// Package routine defines the data model and pure calculations for the
// daily-reading routine: progress records, backlog entries, routine-day
// inference, and the streak calculator.
//
// Everything in this package is a pure function of its inputs. Time never
// comes from the wall clock; callers pass "today" and "now" explicitly so
// every calculation is deterministic and replayable from a snapshot.
//
// DATE HANDLING:
//
// Calendar days are represented by the Day type, always in UTC. Routine days
// cross the engine boundary as "YYYY-MM-DD" strings; instants (ReadAt,
// DelayedAt) as RFC 3339 timestamps. Locale-formatted dates are never
// accepted or produced.
//
// INFERENCE:
//
// A user catching up reads several articles back-to-back on one real-world
// day. InferRoutineDays reconstructs which calendar day each read was "for"
// by walking backward from the read date, with explicit routine days always
// taking precedence. The result is a display heuristic, not a historical
// record: it keeps the streak plausible when explicit data is absent.
package routine
