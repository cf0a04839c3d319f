package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Energy levels accepted on session metrics.
const (
	EnergyLow    = "low"
	EnergyMedium = "medium"
	EnergyHigh   = "high"
)

type StudySession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	SessionType     string             `bson:"session_type" json:"session_type"` // e.g. coding, revision
	StartTime       time.Time          `bson:"start_time" json:"start_time"`
	EndTime         *time.Time         `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Duration        int                `bson:"duration" json:"duration"`                 // actual, seconds
	PlannedDuration int                `bson:"planned_duration" json:"planned_duration"` // seconds
	Completed       bool               `bson:"completed" json:"completed"`

	// Performance metrics, attached after completion.
	ProductivityScore *int    `bson:"productivity_score,omitempty" json:"productivity_score,omitempty"` // 0-100
	FocusQuality      *int    `bson:"focus_quality,omitempty" json:"focus_quality,omitempty"`           // 0-100
	EnergyLevel       *string `bson:"energy_level,omitempty" json:"energy_level,omitempty"`
	BreaksTaken       *int    `bson:"breaks_taken,omitempty" json:"breaks_taken,omitempty"`
	BreakDuration     *int    `bson:"break_duration,omitempty" json:"break_duration,omitempty"` // seconds

	// Denormalized from start time for fast bucketing.
	HourOfDay *int `bson:"hour_of_day,omitempty" json:"hour_of_day,omitempty"` // 0-23
	DayOfWeek *int `bson:"day_of_week,omitempty" json:"day_of_week,omitempty"` // 0-6, Sunday=0

	// Calendar correlation.
	CalendarEventID    *string `bson:"calendar_event_id,omitempty" json:"calendar_event_id,omitempty"`
	CalendarSynced     bool    `bson:"calendar_synced" json:"calendar_synced"`
	PrecedingEventType *string `bson:"preceding_event_type,omitempty" json:"preceding_event_type,omitempty"`
	FollowingEventType *string `bson:"following_event_type,omitempty" json:"following_event_type,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
