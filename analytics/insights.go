package analytics

import (
	"fmt"
	"math"

	"github.com/prime399/study-flow-kiro-sub001/models"
)

const (
	// Fewer completed sessions than this triggers the cold-start response.
	coldStartSessions = 5
	// Window for the consistency check.
	consistencyWindow = 10
	// Minimum productivity-point gap between day periods worth surfacing.
	periodGapThreshold = 15.0
)

const coldStartInsight = "Complete at least 5 study sessions to unlock personalized insights."

// hourOr returns the session's hour of day, or def when the denormalized
// field is missing.
func hourOr(s models.StudySession, def int) int {
	if s.HourOfDay != nil {
		return *s.HourOfDay
	}
	return def
}

func meanProductivity(sessions []models.StudySession) float64 {
	sum := 0
	for _, s := range sessions {
		sum += scoreOrZero(s.ProductivityScore)
	}
	return float64(sum) / float64(len(sessions))
}

// PerformanceInsights generates insight and recommendation strings from a
// user's completed sessions, ordered newest first and capped by the caller
// (the service samples at most 100).
func PerformanceInsights(sessions []models.StudySession) models.InsightSet {
	set := models.InsightSet{Insights: []string{}, Recommendations: []string{}}

	if len(sessions) < coldStartSessions {
		set.Insights = append(set.Insights, coldStartInsight)
		return set
	}

	// Period split. Each filter applies its own default hour (0, 12, 18)
	// to sessions missing the denormalized field, so such a session lands
	// in every period. Downstream consumers depend on this bucketing;
	// keep it when touching this code.
	var morning, afternoon []models.StudySession
	for _, s := range sessions {
		if hourOr(s, 0) < 12 {
			morning = append(morning, s)
		}
		if h := hourOr(s, 12); h >= 12 && h < 18 {
			afternoon = append(afternoon, s)
		}
		// Evening (hour >= 18, default 18) never enters the pairwise
		// comparison below.
	}

	if len(morning) > 0 && len(afternoon) > 0 {
		morningAvg := meanProductivity(morning)
		afternoonAvg := meanProductivity(afternoon)
		diff := math.Abs(morningAvg - afternoonAvg)
		if diff > periodGapThreshold {
			stronger, weakerAvg := "morning", afternoonAvg
			if afternoonAvg > morningAvg {
				stronger, weakerAvg = "afternoon", morningAvg
			}
			pct := 100
			if weakerAvg > 0 {
				pct = int(math.Round(diff / weakerAvg * 100))
			}
			set.Insights = append(set.Insights,
				fmt.Sprintf("You are %d%% more productive in the %s.", pct, stronger))
			set.Recommendations = append(set.Recommendations,
				fmt.Sprintf("Schedule your most demanding study sessions in the %s.", stronger))
		}
	}

	totalBreaks := 0
	for _, s := range sessions {
		totalBreaks += scoreOrZero(s.BreaksTaken)
	}
	avgBreaks := float64(totalBreaks) / float64(len(sessions))
	// The duration check looks only at the most recent session, as a proxy
	// for current habits.
	if avgBreaks < 1.0 && sessions[0].Duration > 1800 {
		set.Recommendations = append(set.Recommendations,
			"Try the Pomodoro technique: take a short break every 25 minutes to maintain focus.")
	}

	recent := sessions
	if len(recent) > consistencyWindow {
		recent = recent[:consistencyWindow]
	}
	high := 0
	for _, s := range recent {
		if scoreOrZero(s.ProductivityScore) > 70 {
			high++
		}
	}
	if float64(high)/float64(len(recent)) > 0.7 {
		set.Insights = append(set.Insights,
			"Your productivity has been consistently high across recent sessions. Keep it up!")
	}

	return set
}
