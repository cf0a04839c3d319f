package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prime399/study-flow-kiro-sub001/services"
)

// The analytics queries share a soft-auth contract: an unauthenticated
// caller gets HTTP 200 with a JSON null body rather than a 401, which the
// frontend renders as a loading/empty state.

// GetHourlyPerformance returns the 24 hour buckets for the current user.
func GetHourlyPerformance() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := optionalUserID(c)
		if !ok {
			c.JSON(http.StatusOK, nil)
			return
		}
		buckets, err := services.GetHourlyPerformance(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, buckets)
	}
}

// GetDailyPerformance returns the 7 day-of-week buckets for the current user.
func GetDailyPerformance() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := optionalUserID(c)
		if !ok {
			c.JSON(http.StatusOK, nil)
			return
		}
		buckets, err := services.GetDailyPerformance(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, buckets)
	}
}

// GetEventImpactAnalysis returns productivity grouped by preceding
// calendar event type.
func GetEventImpactAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := optionalUserID(c)
		if !ok {
			c.JSON(http.StatusOK, nil)
			return
		}
		buckets, err := services.GetEventImpactAnalysis(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, buckets)
	}
}

// GetOptimalStudyTimes returns the top ranked study hours.
func GetOptimalStudyTimes() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := optionalUserID(c)
		if !ok {
			c.JSON(http.StatusOK, nil)
			return
		}
		slots, err := services.GetOptimalStudyTimes(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, slots)
	}
}

// GetPerformanceInsights returns generated insight and recommendation
// strings for the current user.
func GetPerformanceInsights() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := optionalUserID(c)
		if !ok {
			c.JSON(http.StatusOK, nil)
			return
		}
		insights, err := services.GetPerformanceInsights(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, insights)
	}
}
