package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prime399/study-flow-kiro-sub001/analytics"
	"github.com/prime399/study-flow-kiro-sub001/config"
	"github.com/prime399/study-flow-kiro-sub001/models"
)

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrAlreadyResponded       = errors.New("recommendation already responded to")
)

const recommendationsCollection = "schedule_recommendations"

// GenerateScheduleRecommendations ranks the user's optimal study times and
// persists one pending recommendation per slot that has sessions behind
// it. All rows from one run share a batch ID.
func GenerateScheduleRecommendations(userID string) ([]models.ScheduleRecommendation, error) {
	sessions, err := completedSessions(userID, 0)
	if err != nil {
		return nil, err
	}

	slots := analytics.OptimalStudyTimes(sessions)
	batchID := uuid.NewString()
	now := time.Now()

	recs := make([]models.ScheduleRecommendation, 0, len(slots))
	for _, slot := range slots {
		if slot.SessionCount == 0 {
			continue
		}
		recs = append(recs, models.ScheduleRecommendation{
			ID:              primitive.NewObjectID(),
			UserID:          userID,
			BatchID:         batchID,
			Hour:            slot.Hour,
			Score:           slot.Score,
			SessionCount:    slot.SessionCount,
			AvgProductivity: slot.AvgProductivity,
			Status:          models.RecommendationPending,
			CreatedAt:       now,
		})
	}
	if len(recs) == 0 {
		return recs, nil
	}

	docs := make([]interface{}, len(recs))
	for i := range recs {
		docs[i] = recs[i]
	}

	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(recommendationsCollection)
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return recs, nil
}

func GetPendingRecommendations(userID string) ([]models.ScheduleRecommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(recommendationsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{
		"user_id": userID,
		"status":  models.RecommendationPending,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := []models.ScheduleRecommendation{}
	err = cursor.All(ctx, &out)
	return out, err
}

// RespondToRecommendation transitions a pending recommendation the user
// owns to accepted or rejected.
func RespondToRecommendation(userID, recommendationID string, accept bool) (*models.ScheduleRecommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(recommendationsCollection)

	oid, err := primitive.ObjectIDFromHex(recommendationID)
	if err != nil {
		return nil, ErrRecommendationNotFound
	}

	status := models.RecommendationRejected
	if accept {
		status = models.RecommendationAccepted
	}

	res := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID, "status": models.RecommendationPending},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "responded_at", Value: time.Now()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := res.Err(); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		count, countErr := coll.CountDocuments(ctx, bson.M{"_id": oid, "user_id": userID})
		if countErr == nil && count > 0 {
			return nil, ErrAlreadyResponded
		}
		return nil, ErrRecommendationNotFound
	}

	var rec models.ScheduleRecommendation
	if err := res.Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetRecommendationStats counts the user's recommendations by status. The
// acceptance rate covers responded rows only, as a 0-100 percentage with
// one decimal.
func GetRecommendationStats(userID string) (*models.RecommendationStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(recommendationsCollection)

	pipe := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}
	cursor, err := coll.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &models.RecommendationStats{}
	for _, row := range rows {
		switch row.Status {
		case models.RecommendationPending:
			stats.Pending = row.Count
		case models.RecommendationAccepted:
			stats.Accepted = row.Count
		case models.RecommendationRejected:
			stats.Rejected = row.Count
		}
	}
	if responded := stats.Accepted + stats.Rejected; responded > 0 {
		rate := float64(stats.Accepted) / float64(responded) * 100
		stats.AcceptanceRate = math.Round(rate*10) / 10
	}
	return stats, nil
}
