package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Technology(t *testing.T) {
	got := Classify(
		"New GPU cluster doubles training throughput",
		"The datacenter expansion adds thousands of processors dedicated to machine learning workloads.",
		"",
	)
	assert.Equal(t, "Technology", got)
}

func TestClassify_FallbackWhenNothingScores(t *testing.T) {
	// Short keywords match as substrings ("ui" hides inside "quiet",
	// "app" inside "happened"), so the fixture has to dodge them too.
	got := Classify("The weather today", "nothing relevant here", "")
	assert.Equal(t, Fallback, got)
}

func TestClassify_KeywordsMatchAsSubstrings(t *testing.T) {
	// The matcher is a plain substring scan, not word-boundary aware:
	// "ui" hits inside "quiet" and "app" inside "happened".
	got := Classify("A quiet afternoon", "Nothing much happened around the neighborhood today.", "")
	assert.Equal(t, "Technology", got)
}

func TestClassify_ThresholdIsExclusive(t *testing.T) {
	// A single subtitle hit scores exactly 2, which must not win.
	got := Classify("", "", "the local economy")
	assert.Equal(t, Fallback, got)

	// Title hit scores 3, which clears the threshold.
	got = Classify("the local economy", "", "")
	assert.Equal(t, "Business", got)
}

func TestClassify_TitleOutweighsBody(t *testing.T) {
	// Title hits weigh triple, so a title match overrides stray body
	// mentions of other categories.
	got := Classify(
		"Hospital expands vaccine clinic",
		"Doctors say the medicine supply is stable despite market pressure on suppliers.",
		"",
	)
	assert.Equal(t, "Health", got)
}

func TestClassify_Deterministic(t *testing.T) {
	title := "Championship game goes to overtime"
	body := "The team scored in the final seconds of the match to force overtime in the playoff."
	first := Classify(title, body, "")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(title, body, ""))
	}
}

func TestClassify_TieKeepsTableOrder(t *testing.T) {
	// "startup" appears in both the Technology and Business keyword
	// tables; an input touching only that word ties, and the earlier
	// table entry must win every time.
	got := Classify("startup", "startup", "startup")
	assert.Equal(t, "Technology", got)
}

func TestClassify_EmptyInput(t *testing.T) {
	assert.Equal(t, Fallback, Classify("", "", ""))
}

func TestNames_Stable(t *testing.T) {
	names := Names()
	assert.NotEmpty(t, names)
	assert.Equal(t, "Technology", names[0])
	assert.NotContains(t, names, Fallback)
}
