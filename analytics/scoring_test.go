package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductivityScoreIncompleteIsZero(t *testing.T) {
	assert.Equal(t, 0, ProductivityScore(false, 1500, 1500, 2, 200))
	assert.Equal(t, 0, ProductivityScore(false, 0, 0, 0, 0))
	assert.Equal(t, 0, ProductivityScore(false, 9999, 1, 100, 100))
}

func TestProductivityScoreAdherenceTiers(t *testing.T) {
	// Exact adherence with a good break cadence: 60 + 30 + 10.
	assert.Equal(t, 100, ProductivityScore(true, 1500, 1500, 2, 200))

	// Exact adherence, no breaks on a 25-minute session: one break was
	// expected, so the cadence bonus is withheld.
	assert.Equal(t, 90, ProductivityScore(true, 1500, 1500, 0, 0))

	// Short session, zero expected breaks: cadence bonus applies.
	assert.Equal(t, 100, ProductivityScore(true, 1200, 1200, 0, 0))

	// 80% of plan: 60 + 20 + 10.
	assert.Equal(t, 90, ProductivityScore(true, 1000, 1250, 0, 0))

	// 70% of plan: 60 + 10 + 10.
	assert.Equal(t, 80, ProductivityScore(true, 700, 1000, 0, 0))

	// Under 70%: no adherence bonus at all.
	assert.Equal(t, 70, ProductivityScore(true, 600, 1000, 0, 0))
}

func TestProductivityScoreZeroPlannedDuration(t *testing.T) {
	// The ratio degenerates to +Inf, which misses both adherence windows
	// but clears the 0.7 floor. One break was expected and none taken, so
	// no cadence bonus.
	assert.Equal(t, 70, ProductivityScore(true, 1500, 0, 0, 0))
}

func TestProductivityScoreBreakCadence(t *testing.T) {
	// Break time at 20% of the session is not under the threshold.
	assert.Equal(t, 90, ProductivityScore(true, 1500, 1500, 2, 300))
	// Just under it is.
	assert.Equal(t, 100, ProductivityScore(true, 1500, 1500, 2, 299))
}

func TestFocusQualityPenalties(t *testing.T) {
	// Two breaks on a short session where none were expected.
	assert.Equal(t, 80, FocusQuality(1000, 2, 0))

	// Break time over a quarter of the session.
	assert.Equal(t, 70, FocusQuality(1000, 0, 300))

	// Both penalties combine; no sustained-focus bonus at 100 breaks.
	assert.Equal(t, 50, FocusQuality(3600, 100, 3600))

	// Within expectations on every axis.
	assert.Equal(t, 100, FocusQuality(2000, 1, 100))
}

func TestFocusQualitySustainedBonusClamped(t *testing.T) {
	// Long session, no breaks: 100 + 10 clamps to 100.
	assert.Equal(t, 100, FocusQuality(3100, 0, 0))
}

func TestScoresStayInRange(t *testing.T) {
	inputs := [][3]int{
		{3600, 100, 3600},
		{0, 0, 0},
		{1, 50, 50},
		{100000, 0, 0},
		{1500, -1, -1},
	}
	for _, in := range inputs {
		fq := FocusQuality(in[0], in[1], in[2])
		assert.GreaterOrEqual(t, fq, 0)
		assert.LessOrEqual(t, fq, 100)

		ps := ProductivityScore(true, in[0], in[0], in[1], in[2])
		assert.GreaterOrEqual(t, ps, 0)
		assert.LessOrEqual(t, ps, 100)
	}
}
