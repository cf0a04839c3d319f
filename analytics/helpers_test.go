package analytics

import (
	"time"

	"github.com/prime399/study-flow-kiro-sub001/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// completedAt builds a completed session bucketed at the given hour.
func completedAt(hour, productivity int) models.StudySession {
	return models.StudySession{
		UserID:            "u1",
		SessionType:       "studying",
		StartTime:         time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC),
		Duration:          1500,
		PlannedDuration:   1500,
		Completed:         true,
		HourOfDay:         intPtr(hour),
		ProductivityScore: intPtr(productivity),
		FocusQuality:      intPtr(productivity),
	}
}

func repeatAt(n, hour, productivity int) []models.StudySession {
	out := make([]models.StudySession, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, completedAt(hour, productivity))
	}
	return out
}
