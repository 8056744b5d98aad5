package routine

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// TagStats counts how many read articles carried each tag. Counts only ever
// grow while an engine is live; the map is rebuilt only on an explicit
// ledger reset.
type TagStats map[string]int

// NormalizeTag applies NFC normalization so visually identical tags share
// one key regardless of how the content source composed them.
func NormalizeTag(tag string) string {
	return norm.NFC.String(tag)
}

// Add increments the count for each tag. Empty tags are skipped.
func (s TagStats) Add(tags ...string) {
	for _, tag := range tags {
		t := NormalizeTag(tag)
		if t == "" {
			continue
		}
		s[t]++
	}
}

// Clone returns an independent copy.
func (s TagStats) Clone() TagStats {
	out := make(TagStats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// TagCount pairs a tag with its count for ordered display.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Sorted returns counts ordered by descending count, then tag name, so
// output is deterministic.
func (s TagStats) Sorted() []TagCount {
	out := make([]TagCount, 0, len(s))
	for tag, count := range s {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
