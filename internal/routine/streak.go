package routine

// StreakCycle is the length of the display cycle: the streak shown to the
// user wraps back into the 1..7 range every seven days (the "weekly flame").
const StreakCycle = 7

// PreservedDays builds the set of streak-preserving calendar days from a
// full snapshot of the ledger and backlog:
//
//   - the inferred intended day of every read record
//   - the original routine day of every record read late from the backlog
//   - the original routine day of every still-live backlog entry (an
//     unread-but-delayed day keeps its credit until the entry expires)
func PreservedDays(records []ProgressRecord, backlog []BacklogEntry) map[Day]bool {
	inferred := InferRoutineDays(records)

	days := make(map[Day]bool, len(records)+len(backlog))
	for _, r := range records {
		if day, ok := inferred[r.ArticleID]; ok {
			days[day] = true
		}
		if r.IsRead && !r.OriginalRoutineDay.IsZero() {
			days[r.OriginalRoutineDay] = true
		}
	}
	for _, e := range backlog {
		if !e.OriginalRoutineDay.IsZero() {
			days[e.OriginalRoutineDay] = true
		}
	}
	return days
}

// ComputeStreak derives the user-facing streak number for today.
//
// The streak is zero unless today itself is preserved. Otherwise it counts
// consecutive preserved days walking backward from today, then wraps the raw
// count into the 1..StreakCycle display range.
//
// The value is recomputed fresh from the snapshot on every call. A backlog
// sweep can therefore lower the next computed value with no new reads: a day
// that was only preserved by a since-expired entry stops counting once the
// sweep removes it.
func ComputeStreak(records []ProgressRecord, backlog []BacklogEntry, today Day) int {
	raw := RawStreak(records, backlog, today)
	if raw == 0 {
		return 0
	}
	if raw > StreakCycle {
		return ((raw - 1) % StreakCycle) + 1
	}
	return raw
}

// RawStreak returns the unbounded consecutive-day count ending today, or
// zero when today is not preserved. The display layer never shows this
// directly; ComputeStreak applies the weekly cycle.
func RawStreak(records []ProgressRecord, backlog []BacklogEntry, today Day) int {
	days := PreservedDays(records, backlog)
	if !days[today] {
		return 0
	}

	count := 0
	for day := today; days[day]; day = day.Prev() {
		count++
	}
	return count
}
