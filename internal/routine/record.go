package routine

import "time"

// Article is the engine's view of an article supplied by the content source.
// The engine never fetches or mutates articles; it only records progress
// against them.
type Article struct {
	ID         string   `json:"id"`
	Title      string   `json:"title,omitempty"`
	URL        string   `json:"url,omitempty"`
	RoutineDay Day      `json:"routine_day"`
	Tags       []string `json:"tags,omitempty"`
}

// ProgressRecord tracks one article ever added to history.
//
// Once IsRead flips to true the record is immutable in production use:
// ReadAt is set exactly once and no production operation clears it again.
type ProgressRecord struct {
	ArticleID    string `json:"article_id"`
	ArticleTitle string `json:"article_title,omitempty"`
	ArticleURL   string `json:"article_url,omitempty"`

	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	// RoutineDay is the calendar day the article was intended for.
	// Zero on legacy records; inference fills the gap for streak purposes.
	RoutineDay Day `json:"routine_day"`

	// OriginalRoutineDay is set only when the article was read after being
	// delayed. It records the day the article was originally due.
	OriginalRoutineDay Day `json:"original_routine_day"`
}

// ReadDay returns the UTC calendar date of ReadAt, or the zero Day for
// unread records.
func (r ProgressRecord) ReadDay() Day {
	if !r.IsRead || r.ReadAt == nil {
		return Day{}
	}
	return DayOf(*r.ReadAt)
}

// BacklogEntry is a postponed, not-yet-read article.
type BacklogEntry struct {
	// Article is kept whole so reading can resume without a refetch.
	Article   Article   `json:"article"`
	DelayedAt time.Time `json:"delayed_at"`

	// OriginalRoutineDay is the day the article was due when delayed.
	// A still-live entry preserves streak credit for this day.
	OriginalRoutineDay Day `json:"original_routine_day"`
}

// Expired reports whether the entry has aged out: two or more calendar days
// between the delay date and now. Expiry is judged on calendar dates, not
// elapsed hours, so an entry delayed late on Monday expires at any time on
// Wednesday.
func (e BacklogEntry) Expired(now time.Time) bool {
	return DayOf(now).DaysSince(DayOf(e.DelayedAt)) >= BacklogExpiryDays
}

const (
	// MaxBacklogEntries caps concurrent delayed articles.
	MaxBacklogEntries = 2

	// BacklogExpiryDays is the calendar-day age at which a backlog entry
	// expires and stops preserving streak credit.
	BacklogExpiryDays = 2
)
