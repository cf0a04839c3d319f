package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime399/study-flow-kiro-sub001/models"
)

func TestPerformanceInsightsColdStart(t *testing.T) {
	sessions := repeatAt(4, 9, 90)

	set := PerformanceInsights(sessions)
	require.Len(t, set.Insights, 1)
	assert.Equal(t, coldStartInsight, set.Insights[0])
	assert.Empty(t, set.Recommendations)
}

func TestPerformanceInsightsNoColdStartAtFive(t *testing.T) {
	sessions := repeatAt(5, 9, 90)

	set := PerformanceInsights(sessions)
	assert.NotContains(t, set.Insights, coldStartInsight)
}

func TestPerformanceInsightsPeriodComparison(t *testing.T) {
	var sessions []models.StudySession
	sessions = append(sessions, repeatAt(3, 9, 90)...)
	sessions = append(sessions, repeatAt(2, 14, 60)...)
	// Keep durations below the Pomodoro trigger.
	for i := range sessions {
		sessions[i].Duration = 1000
	}

	set := PerformanceInsights(sessions)
	require.Len(t, set.Insights, 1)
	assert.Equal(t, "You are 50% more productive in the morning.", set.Insights[0])
	require.Len(t, set.Recommendations, 1)
	assert.Equal(t, "Schedule your most demanding study sessions in the morning.", set.Recommendations[0])
}

func TestPerformanceInsightsPeriodComparisonAfternoon(t *testing.T) {
	var sessions []models.StudySession
	sessions = append(sessions, repeatAt(2, 9, 50)...)
	sessions = append(sessions, repeatAt(3, 14, 75)...)
	for i := range sessions {
		sessions[i].Duration = 1000
	}

	set := PerformanceInsights(sessions)
	require.Len(t, set.Insights, 1)
	assert.Equal(t, "You are 50% more productive in the afternoon.", set.Insights[0])
}

func TestPerformanceInsightsMissingHourLandsInEveryPeriod(t *testing.T) {
	// Four morning sessions plus one with no hour at all. The missing-hour
	// session defaults into the morning AND the afternoon comparison, so
	// the afternoon bucket is non-empty and the comparison fires against
	// its zero average.
	sessions := repeatAt(4, 9, 100)
	unbucketed := completedAt(9, 0)
	unbucketed.HourOfDay = nil
	unbucketed.StartTime = sessions[0].StartTime
	sessions = append(sessions, unbucketed)
	for i := range sessions {
		sessions[i].Duration = 1000
	}

	set := PerformanceInsights(sessions)
	assert.Contains(t, set.Insights, "You are 100% more productive in the morning.")
}

func TestPerformanceInsightsPomodoroRecommendation(t *testing.T) {
	sessions := repeatAt(5, 9, 50)
	// Newest session is the long one; breaks default to zero.
	sessions[0].Duration = 2000

	set := PerformanceInsights(sessions)
	require.Len(t, set.Recommendations, 1)
	assert.Contains(t, set.Recommendations[0], "Pomodoro")
}

func TestPerformanceInsightsPomodoroUsesMostRecentDurationOnly(t *testing.T) {
	sessions := repeatAt(5, 9, 50)
	// Older sessions are long, but only the newest one is consulted.
	for i := 1; i < len(sessions); i++ {
		sessions[i].Duration = 2000
	}
	sessions[0].Duration = 1500

	set := PerformanceInsights(sessions)
	assert.Empty(t, set.Recommendations)
}

func TestPerformanceInsightsPomodoroSkippedWithRegularBreaks(t *testing.T) {
	sessions := repeatAt(5, 9, 50)
	sessions[0].Duration = 2000
	for i := range sessions {
		sessions[i].BreaksTaken = intPtr(2)
	}

	set := PerformanceInsights(sessions)
	assert.Empty(t, set.Recommendations)
}

func TestPerformanceInsightsConsistency(t *testing.T) {
	sessions := repeatAt(10, 9, 80)
	for i := range sessions {
		sessions[i].BreaksTaken = intPtr(2)
		sessions[i].Duration = 1000
	}

	set := PerformanceInsights(sessions)
	require.Len(t, set.Insights, 1)
	assert.Contains(t, set.Insights[0], "consistently high")
}

func TestPerformanceInsightsConsistencyBelowThreshold(t *testing.T) {
	// 7 of 10 recent sessions above 70 is a ratio of exactly 0.7, which
	// does not clear the strict threshold.
	sessions := repeatAt(7, 9, 80)
	sessions = append(sessions, repeatAt(3, 9, 50)...)
	for i := range sessions {
		sessions[i].BreaksTaken = intPtr(2)
		sessions[i].Duration = 1000
	}

	set := PerformanceInsights(sessions)
	assert.Empty(t, set.Insights)
}
