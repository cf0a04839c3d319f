package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation lifecycle states.
const (
	RecommendationPending  = "pending"
	RecommendationAccepted = "accepted"
	RecommendationRejected = "rejected"
)

// ScheduleRecommendation is a persisted "study at this hour" suggestion
// derived from the optimal-time ranking. Recommendations created in the
// same generation run share a batch ID.
type ScheduleRecommendation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	BatchID         string             `bson:"batch_id" json:"batch_id"`
	Hour            int                `bson:"hour" json:"hour"` // 0-23
	Score           float64            `bson:"score" json:"score"`
	SessionCount    int                `bson:"session_count" json:"session_count"`
	AvgProductivity int                `bson:"avg_productivity" json:"avg_productivity"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	RespondedAt     *time.Time         `bson:"responded_at,omitempty" json:"responded_at,omitempty"`
}

// RecommendationStats summarizes a user's accept/reject history.
type RecommendationStats struct {
	Pending        int     `json:"pending"`
	Accepted       int     `json:"accepted"`
	Rejected       int     `json:"rejected"`
	AcceptanceRate float64 `json:"acceptance_rate"` // percent of responded recommendations accepted
}
