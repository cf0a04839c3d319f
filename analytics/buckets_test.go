package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prime399/study-flow-kiro-sub001/models"
)

func TestHourlyPerformanceAllKeysPresent(t *testing.T) {
	buckets := HourlyPerformance(nil)
	require.Len(t, buckets, 24)
	for h := 0; h < 24; h++ {
		b, ok := buckets[h]
		require.True(t, ok, "hour %d missing", h)
		assert.Equal(t, models.HourlyBucket{}, b)
	}
}

func TestHourlyPerformanceReduction(t *testing.T) {
	sessions := []models.StudySession{
		completedAt(9, 90),
		completedAt(9, 80),
		completedAt(14, 60),
	}
	// Incomplete sessions never enter any bucket.
	incomplete := completedAt(9, 100)
	incomplete.Completed = false
	sessions = append(sessions, incomplete)

	buckets := HourlyPerformance(sessions)
	require.Len(t, buckets, 24)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 3, total, "bucket counts must sum to completed sessions")

	assert.Equal(t, 2, buckets[9].Count)
	assert.Equal(t, 85, buckets[9].AvgProductivity)
	assert.Equal(t, 85, buckets[9].AvgFocusQuality)
	assert.Equal(t, 3000, buckets[9].TotalDuration)
	assert.Equal(t, 1, buckets[14].Count)
	assert.Equal(t, 60, buckets[14].AvgProductivity)
	assert.Equal(t, 0, buckets[10].Count)
}

func TestHourlyPerformanceRoundsAverages(t *testing.T) {
	sessions := []models.StudySession{
		completedAt(9, 85),
		completedAt(9, 80),
	}
	buckets := HourlyPerformance(sessions)
	// 82.5 rounds up.
	assert.Equal(t, 83, buckets[9].AvgProductivity)
}

func TestHourlyPerformanceFallsBackToStartTime(t *testing.T) {
	s := completedAt(9, 70)
	s.HourOfDay = nil
	s.StartTime = time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	buckets := HourlyPerformance([]models.StudySession{s})
	assert.Equal(t, 1, buckets[10].Count)
	assert.Equal(t, 0, buckets[9].Count)
}

func TestDailyPerformance(t *testing.T) {
	sunday := completedAt(9, 90)
	sunday.DayOfWeek = intPtr(0)
	saturday := completedAt(9, 70)
	saturday.DayOfWeek = intPtr(6)

	buckets := DailyPerformance([]models.StudySession{sunday, saturday})
	require.Len(t, buckets, 7)

	assert.Equal(t, "Sunday", buckets[0].DayName)
	assert.Equal(t, "Saturday", buckets[6].DayName)
	assert.Equal(t, "Wednesday", buckets[3].DayName)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 90, buckets[0].AvgProductivity)
	assert.Equal(t, 0, buckets[3].Count)
}

func TestEventImpactAnalysisLazyKeys(t *testing.T) {
	withEvent := func(event string, productivity int) models.StudySession {
		s := completedAt(9, productivity)
		s.PrecedingEventType = strPtr(event)
		return s
	}

	sessions := []models.StudySession{
		withEvent("meeting", 80),
		withEvent("meeting", 60),
		withEvent("lecture", 90),
		completedAt(9, 50), // no preceding event
		withEvent("", 40),  // empty event type is skipped
	}

	buckets := EventImpactAnalysis(sessions)
	require.Len(t, buckets, 2)
	assert.Equal(t, 2, buckets["meeting"].Count)
	assert.Equal(t, 70, buckets["meeting"].AvgProductivity)
	assert.Equal(t, 1, buckets["lecture"].Count)
	assert.Equal(t, 90, buckets["lecture"].AvgProductivity)
}

func TestOptimalStudyTimesRanking(t *testing.T) {
	var sessions []models.StudySession
	sessions = append(sessions, repeatAt(10, 9, 85)...)
	sessions = append(sessions, repeatAt(5, 14, 60)...)

	slots := OptimalStudyTimes(sessions)
	require.Len(t, slots, 5)

	assert.Equal(t, 9, slots[0].Hour)
	assert.InDelta(t, 85.0, slots[0].Score, 0.001)
	assert.Equal(t, 10, slots[0].SessionCount)
	assert.Equal(t, 85, slots[0].AvgProductivity)

	assert.Equal(t, 14, slots[1].Hour)
	assert.InDelta(t, 30.0, slots[1].Score, 0.001)

	for i := 1; i < len(slots); i++ {
		assert.GreaterOrEqual(t, slots[i-1].Score, slots[i].Score)
	}
}

func TestOptimalStudyTimesConfidenceDiscount(t *testing.T) {
	var sessions []models.StudySession
	sessions = append(sessions, repeatAt(3, 8, 100)...)
	sessions = append(sessions, repeatAt(10, 9, 100)...)

	slots := OptimalStudyTimes(sessions)
	assert.Equal(t, 9, slots[0].Hour)
	assert.InDelta(t, 100.0, slots[0].Score, 0.001)
	assert.Equal(t, 8, slots[1].Hour)
	assert.InDelta(t, 30.0, slots[1].Score, 0.001)
}

func TestOptimalStudyTimesTieBreaksOnLowerHour(t *testing.T) {
	var sessions []models.StudySession
	sessions = append(sessions, repeatAt(1, 10, 50)...)
	sessions = append(sessions, repeatAt(1, 8, 50)...)

	slots := OptimalStudyTimes(sessions)
	assert.Equal(t, 8, slots[0].Hour)
	assert.Equal(t, 10, slots[1].Hour)
	// Remaining slots are empty hours in ascending order.
	assert.Equal(t, 0, slots[2].Hour)
	assert.InDelta(t, 0.0, slots[2].Score, 0.001)
}
