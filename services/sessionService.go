package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prime399/study-flow-kiro-sub001/analytics"
	"github.com/prime399/study-flow-kiro-sub001/config"
	"github.com/prime399/study-flow-kiro-sub001/models"
)

// ErrSessionNotFound covers both a missing row and a row owned by another
// user; the two are deliberately not distinguished.
var ErrSessionNotFound = errors.New("session not found")

const serviceTimeout = 10 * time.Second

const sessionsCollection = "study_sessions"

type CreateSessionInput struct {
	SessionType        string
	StartTime          *time.Time
	Duration           int // seconds
	PlannedDuration    int // seconds
	Completed          bool
	BreaksTaken        *int
	BreakDuration      *int // seconds
	CalendarEventID    *string
	PrecedingEventType *string
	FollowingEventType *string
}

// CreateStudySession inserts a session row for the user, denormalizing
// hour-of-day and day-of-week from the start time. Completed sessions get
// productivity and focus scores computed at insert.
func CreateStudySession(userID string, in CreateSessionInput) (*models.StudySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(sessionsCollection)
	now := time.Now()

	start := now
	if in.StartTime != nil {
		start = *in.StartTime
	}
	hour := start.Hour()
	day := int(start.Weekday())

	s := &models.StudySession{
		ID:                 primitive.NewObjectID(),
		UserID:             userID,
		SessionType:        in.SessionType,
		StartTime:          start,
		Duration:           in.Duration,
		PlannedDuration:    in.PlannedDuration,
		Completed:          in.Completed,
		BreaksTaken:        in.BreaksTaken,
		BreakDuration:      in.BreakDuration,
		HourOfDay:          &hour,
		DayOfWeek:          &day,
		CalendarEventID:    in.CalendarEventID,
		PrecedingEventType: in.PrecedingEventType,
		FollowingEventType: in.FollowingEventType,
		CreatedAt:          now,
	}
	if in.CalendarEventID != nil {
		s.CalendarSynced = true
	}
	if in.Completed {
		end := start.Add(time.Duration(in.Duration) * time.Second)
		s.EndTime = &end

		breaks := intOrZero(in.BreaksTaken)
		breakDur := intOrZero(in.BreakDuration)
		prod := analytics.ProductivityScore(true, in.Duration, in.PlannedDuration, breaks, breakDur)
		focus := analytics.FocusQuality(in.Duration, breaks, breakDur)
		s.ProductivityScore = &prod
		s.FocusQuality = &focus
	}

	if _, err := coll.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	InvalidateAnalyticsCache(userID)
	return s, nil
}

func GetSessionsByUser(userID string, limit int64) ([]models.StudySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(sessionsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.StudySession
	err = cursor.All(ctx, &out)
	return out, err
}

// completedSessions returns the user's completed sessions, newest first.
// A limit of 0 means no limit.
func completedSessions(userID string, limit int64) ([]models.StudySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(sessionsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID, "completed": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.StudySession
	err = cursor.All(ctx, &out)
	return out, err
}

type SessionMetricsInput struct {
	ProductivityScore *int
	FocusQuality      *int
	EnergyLevel       *string
	BreaksTaken       *int
	BreakDuration     *int // seconds
}

// UpdateSessionMetrics attaches performance metrics to a session the user
// owns. Hour-of-day and day-of-week are always recomputed from the stored
// start time. Scores omitted from the input are derived from the session's
// durations and break counts when the session is completed.
func UpdateSessionMetrics(userID, sessionID string, in SessionMetricsInput) error {
	ctx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	defer cancel()
	coll := config.OpenCollection(sessionsCollection)

	oid, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return ErrSessionNotFound
	}

	var s models.StudySession
	err = coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}
		return err
	}

	breaks := intOrZero(s.BreaksTaken)
	if in.BreaksTaken != nil {
		breaks = *in.BreaksTaken
	}
	breakDur := intOrZero(s.BreakDuration)
	if in.BreakDuration != nil {
		breakDur = *in.BreakDuration
	}

	set := bson.D{
		{Key: "hour_of_day", Value: s.StartTime.Hour()},
		{Key: "day_of_week", Value: int(s.StartTime.Weekday())},
	}
	if in.BreaksTaken != nil {
		set = append(set, bson.E{Key: "breaks_taken", Value: *in.BreaksTaken})
	}
	if in.BreakDuration != nil {
		set = append(set, bson.E{Key: "break_duration", Value: *in.BreakDuration})
	}
	if in.EnergyLevel != nil {
		set = append(set, bson.E{Key: "energy_level", Value: *in.EnergyLevel})
	}

	switch {
	case in.ProductivityScore != nil:
		set = append(set, bson.E{Key: "productivity_score", Value: *in.ProductivityScore})
	case s.Completed:
		set = append(set, bson.E{Key: "productivity_score", Value: analytics.ProductivityScore(true, s.Duration, s.PlannedDuration, breaks, breakDur)})
	}
	switch {
	case in.FocusQuality != nil:
		set = append(set, bson.E{Key: "focus_quality", Value: *in.FocusQuality})
	case s.Completed:
		set = append(set, bson.E{Key: "focus_quality", Value: analytics.FocusQuality(s.Duration, breaks, breakDur)})
	}

	_, err = coll.UpdateOne(ctx, bson.M{"_id": oid, "user_id": userID}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return err
	}
	InvalidateAnalyticsCache(userID)
	return nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
