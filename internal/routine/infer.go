package routine

import "sort"

// InferRoutineDays reconstructs, for every read record, the calendar day the
// read was "for". The result maps article ID to the inferred day.
//
// Records read on the same UTC calendar date form a group. A singleton group
// keeps its explicit RoutineDay when present, else the read date itself. A
// larger group is a catch-up burst: records are sorted by article ID for
// determinism, then assigned read-date, read-date−1, read-date−2, ... in
// order. An explicit RoutineDay always takes precedence over the inferred
// value.
//
// Unread records are ignored.
func InferRoutineDays(records []ProgressRecord) map[string]Day {
	groups := make(map[Day][]ProgressRecord)
	for _, r := range records {
		day := r.ReadDay()
		if day.IsZero() {
			continue
		}
		groups[day] = append(groups[day], r)
	}

	inferred := make(map[string]Day, len(records))
	for readDay, group := range groups {
		if len(group) == 1 {
			r := group[0]
			if !r.RoutineDay.IsZero() {
				inferred[r.ArticleID] = r.RoutineDay
			} else {
				inferred[r.ArticleID] = readDay
			}
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].ArticleID < group[j].ArticleID
		})
		for i, r := range group {
			if !r.RoutineDay.IsZero() {
				inferred[r.ArticleID] = r.RoutineDay
				continue
			}
			inferred[r.ArticleID] = readDay.AddDays(-i)
		}
	}

	return inferred
}
