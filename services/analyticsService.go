package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prime399/study-flow-kiro-sub001/analytics"
	"github.com/prime399/study-flow-kiro-sub001/config"
	"github.com/prime399/study-flow-kiro-sub001/models"
)

// Aggregations are recomputed from the session store on every call; Redis
// only shortens the window between identical scans. Entries expire quickly
// and are dropped outright when a session is created or updated.
const (
	analyticsCacheTTL  = 5 * time.Minute
	cacheTimeout       = 2 * time.Second
	insightSampleLimit = 100
)

func GetHourlyPerformance(userID string) (map[int]models.HourlyBucket, error) {
	var cached map[int]models.HourlyBucket
	if cacheGet(userID, "hourly", &cached) {
		return cached, nil
	}

	sessions, err := completedSessions(userID, 0)
	if err != nil {
		return nil, err
	}
	out := analytics.HourlyPerformance(sessions)
	cacheSet(userID, "hourly", out)
	return out, nil
}

func GetDailyPerformance(userID string) (map[int]models.DailyBucket, error) {
	var cached map[int]models.DailyBucket
	if cacheGet(userID, "daily", &cached) {
		return cached, nil
	}

	sessions, err := completedSessions(userID, 0)
	if err != nil {
		return nil, err
	}
	out := analytics.DailyPerformance(sessions)
	cacheSet(userID, "daily", out)
	return out, nil
}

func GetEventImpactAnalysis(userID string) (map[string]models.EventImpactBucket, error) {
	var cached map[string]models.EventImpactBucket
	if cacheGet(userID, "event_impact", &cached) {
		return cached, nil
	}

	sessions, err := completedSessions(userID, 0)
	if err != nil {
		return nil, err
	}
	out := analytics.EventImpactAnalysis(sessions)
	cacheSet(userID, "event_impact", out)
	return out, nil
}

func GetOptimalStudyTimes(userID string) ([]models.OptimalTimeSlot, error) {
	sessions, err := completedSessions(userID, 0)
	if err != nil {
		return nil, err
	}
	return analytics.OptimalStudyTimes(sessions), nil
}

func GetPerformanceInsights(userID string) (*models.InsightSet, error) {
	sessions, err := completedSessions(userID, insightSampleLimit)
	if err != nil {
		return nil, err
	}
	set := analytics.PerformanceInsights(sessions)
	return &set, nil
}

func cacheKey(userID, view string) string {
	return "analytics:" + view + ":" + userID
}

func cacheGet(userID, view string, dest any) bool {
	rdb := config.Redis()
	if rdb == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()
	raw, err := rdb.Get(ctx, cacheKey(userID, view)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Analytics cache read failed: %v", err)
		}
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func cacheSet(userID, view string, v any) {
	rdb := config.Redis()
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()
	if err := rdb.Set(ctx, cacheKey(userID, view), raw, analyticsCacheTTL).Err(); err != nil {
		log.Printf("Analytics cache write failed: %v", err)
	}
}

// InvalidateAnalyticsCache drops the user's cached aggregate views. Called
// after any session write.
func InvalidateAnalyticsCache(userID string) {
	rdb := config.Redis()
	if rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()
	keys := []string{
		cacheKey(userID, "hourly"),
		cacheKey(userID, "daily"),
		cacheKey(userID, "event_impact"),
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Analytics cache invalidation failed: %v", err)
	}
}
