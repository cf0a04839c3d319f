// Package analytics derives performance scores, bucketed aggregates and
// study-time recommendations from session rows. Everything in this package
// is pure computation over in-memory sessions; persistence lives in the
// services layer.
package analytics

// One break is expected per 25 minutes of work.
const expectedBreakInterval = 1500 // seconds

func expectedBreaks(duration int) int {
	return duration / expectedBreakInterval
}

// ProductivityScore rates a session 0-100. Completion earns a base of 60,
// sticking close to the planned duration earns up to 30 more, and a healthy
// break cadence (at least the expected count, under 20% of the session in
// break time) earns 10. Incomplete sessions always score 0.
func ProductivityScore(completed bool, actualDuration, plannedDuration, breaksTaken, breakDuration int) int {
	if !completed {
		return 0
	}

	score := 60

	// Float division keeps a zero planned duration well-defined: the ratio
	// becomes +Inf, which misses both adherence windows but still clears
	// the 0.7 floor.
	ratio := float64(actualDuration) / float64(plannedDuration)
	switch {
	case ratio >= 0.9 && ratio <= 1.1:
		score += 30
	case ratio >= 0.8 && ratio <= 1.2:
		score += 20
	case ratio >= 0.7:
		score += 10
	}

	if breaksTaken >= expectedBreaks(actualDuration) &&
		float64(breakDuration) < 0.2*float64(actualDuration) {
		score += 10
	}

	return clampScore(score)
}

// FocusQuality rates a session 0-100, starting from 100. Taking more than
// 1.5x the expected breaks costs 20 points, spending over a quarter of the
// session on break costs 30, and sessions longer than 50 minutes with a
// break count within expectations gain a 10-point sustained-focus bonus.
// The adjustments are independent and can combine in one call.
func FocusQuality(duration, breaksTaken, breakDuration int) int {
	score := 100
	expected := expectedBreaks(duration)

	if float64(breaksTaken) > 1.5*float64(expected) {
		score -= 20
	}
	if float64(breakDuration) > 0.25*float64(duration) {
		score -= 30
	}
	if duration > 3000 && breaksTaken <= expected {
		score += 10
	}

	return clampScore(score)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
