package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prime399/study-flow-kiro-sub001/services"
)

// GenerateRecommendations runs the optimal-time ranking and persists the
// resulting slots as pending schedule recommendations.
func GenerateRecommendations() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		recs, err := services.GenerateScheduleRecommendations(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recommendations": recs})
	}
}

// GetPendingRecommendations lists the current user's unanswered
// recommendations, newest first.
func GetPendingRecommendations() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		recs, err := services.GetPendingRecommendations(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
	}
}

// RespondToRecommendation accepts or rejects a pending recommendation.
func RespondToRecommendation() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Action string `json:"action" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
			return
		}
		action := strings.ToLower(strings.TrimSpace(body.Action))
		if action != "accept" && action != "reject" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "action must be accept or reject"})
			return
		}

		rec, err := services.RespondToRecommendation(userID, c.Param("id"), action == "accept")
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecommendationNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, services.ErrAlreadyResponded):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// GetRecommendationStats summarizes the user's accept/reject history.
func GetRecommendationStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		stats, err := services.GetRecommendationStats(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
