package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prime399/study-flow-kiro-sub001/helpers"
	"github.com/prime399/study-flow-kiro-sub001/services"
)

// CreateStudySession records a study session for the current user.
func CreateStudySession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			SessionType        string     `json:"session_type"`
			StartTime          *time.Time `json:"start_time"`
			Duration           int        `json:"duration"`         // seconds
			PlannedDuration    int        `json:"planned_duration"` // seconds
			Completed          bool       `json:"completed"`
			BreaksTaken        *int       `json:"breaks_taken" binding:"omitempty,min=0"`
			BreakDuration      *int       `json:"break_duration" binding:"omitempty,min=0"`
			CalendarEventID    *string    `json:"calendar_event_id"`
			PrecedingEventType *string    `json:"preceding_event_type"`
			FollowingEventType *string    `json:"following_event_type"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
			return
		}
		if strings.TrimSpace(body.SessionType) == "" {
			body.SessionType = "unspecified"
		}
		if body.Duration < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must not be negative"})
			return
		}
		if body.PlannedDuration < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "planned_duration must not be negative"})
			return
		}

		session, err := services.CreateStudySession(userID, services.CreateSessionInput{
			SessionType:        body.SessionType,
			StartTime:          body.StartTime,
			Duration:           body.Duration,
			PlannedDuration:    body.PlannedDuration,
			Completed:          body.Completed,
			BreaksTaken:        body.BreaksTaken,
			BreakDuration:      body.BreakDuration,
			CalendarEventID:    body.CalendarEventID,
			PrecedingEventType: body.PrecedingEventType,
			FollowingEventType: body.FollowingEventType,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// GetMySessions returns study sessions for the current user.
func GetMySessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		limit := int64(30)
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}
		sessions, err := services.GetSessionsByUser(userID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

// UpdateSessionMetrics attaches performance metrics to one of the current
// user's sessions. Range violations are rejected before anything is
// written; hour-of-day and day-of-week are recomputed server-side.
func UpdateSessionMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			ProductivityScore *int    `json:"productivity_score" binding:"omitempty,min=0,max=100"`
			FocusQuality      *int    `json:"focus_quality" binding:"omitempty,min=0,max=100"`
			EnergyLevel       *string `json:"energy_level" binding:"omitempty,oneof=low medium high"`
			BreaksTaken       *int    `json:"breaks_taken" binding:"omitempty,min=0"`
			BreakDuration     *int    `json:"break_duration" binding:"omitempty,min=0"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid metrics payload"})
			return
		}

		err := services.UpdateSessionMetrics(userID, c.Param("id"), services.SessionMetricsInput{
			ProductivityScore: body.ProductivityScore,
			FocusQuality:      body.FocusQuality,
			EnergyLevel:       body.EnergyLevel,
			BreaksTaken:       body.BreaksTaken,
			BreakDuration:     body.BreakDuration,
		})
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "session metrics updated"})
	}
}

// getUserID extracts the authenticated user from the claims set by the
// auth middleware, writing a 401 and returning "" when absent.
func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}

// optionalUserID is the soft variant used by analytics queries: no
// response is written when the caller is unauthenticated.
func optionalUserID(c *gin.Context) (string, bool) {
	claimsVal, ok := c.Get("claims")
	if !ok {
		return "", false
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
