package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTagStats_Add tests counting and empty-tag skipping.
func TestTagStats_Add(t *testing.T) {
	stats := TagStats{}
	stats.Add("go", "testing")
	stats.Add("go", "")

	assert.Equal(t, 2, stats["go"])
	assert.Equal(t, 1, stats["testing"])
	assert.Len(t, stats, 2)
}

// TestTagStats_NFCNormalization tests that composed and decomposed forms of
// the same tag share one key.
func TestTagStats_NFCNormalization(t *testing.T) {
	stats := TagStats{}
	stats.Add("café")   // precomposed é
	stats.Add("café")  // e + combining acute

	assert.Equal(t, 2, stats["café"])
	assert.Len(t, stats, 1)
}

// TestTagStats_Clone tests independence of clones.
func TestTagStats_Clone(t *testing.T) {
	stats := TagStats{"go": 3}
	clone := stats.Clone()
	clone.Add("go")

	assert.Equal(t, 3, stats["go"])
	assert.Equal(t, 4, clone["go"])
}

// TestTagStats_Sorted tests deterministic ordering.
func TestTagStats_Sorted(t *testing.T) {
	stats := TagStats{"zig": 2, "ada": 2, "go": 5}

	got := stats.Sorted()
	assert.Equal(t, []TagCount{
		{Tag: "go", Count: 5},
		{Tag: "ada", Count: 2},
		{Tag: "zig", Count: 2},
	}, got)
}
