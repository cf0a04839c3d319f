package models

// HourlyBucket aggregates completed sessions for one hour of day (0-23).
// Buckets are recomputed on every query and never persisted.
type HourlyBucket struct {
	Count           int `json:"count"`
	AvgProductivity int `json:"avg_productivity"`
	AvgFocusQuality int `json:"avg_focus_quality"`
	TotalDuration   int `json:"total_duration"` // seconds
}

// DailyBucket aggregates completed sessions for one day of week (0-6, Sunday=0).
type DailyBucket struct {
	Count           int    `json:"count"`
	AvgProductivity int    `json:"avg_productivity"`
	AvgFocusQuality int    `json:"avg_focus_quality"`
	TotalDuration   int    `json:"total_duration"` // seconds
	DayName         string `json:"day_name"`
}

// EventImpactBucket aggregates sessions by the calendar event type that
// preceded them. Keys are created on first occurrence.
type EventImpactBucket struct {
	Count           int `json:"count"`
	AvgProductivity int `json:"avg_productivity"`
	AvgFocusQuality int `json:"avg_focus_quality"`
}

// OptimalTimeSlot ranks an hour of day by confidence-weighted productivity.
type OptimalTimeSlot struct {
	Hour            int     `json:"hour"`
	Score           float64 `json:"score"`
	SessionCount    int     `json:"session_count"`
	AvgProductivity int     `json:"avg_productivity"`
}

// InsightSet carries generated insight and recommendation strings.
type InsightSet struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
