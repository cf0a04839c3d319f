package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prime399/study-flow-kiro-sub001/controllers"
	"github.com/prime399/study-flow-kiro-sub001/middleware"
)

func SetupRoutes(router *gin.RouterGroup) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())

	// Analytics queries use soft auth: an unauthenticated caller gets a
	// JSON null body instead of a 401.
	analytics := router.Group("/analytics")
	analytics.Use(middleware.OptionalAuthenticate())
	{
		analytics.GET("/hourly", controllers.GetHourlyPerformance())
		analytics.GET("/daily", controllers.GetDailyPerformance())
		analytics.GET("/event-impact", controllers.GetEventImpactAnalysis())
		analytics.GET("/optimal-times", controllers.GetOptimalStudyTimes())
		analytics.GET("/insights", controllers.GetPerformanceInsights())
	}

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user (all authenticated)
		protected.GET("/me", controllers.GetMe())

		// ADMIN only
		protected.GET("/users",
			middleware.Authorize("ADMIN"),
			controllers.GetUsers(),
		)

		// Study sessions and metrics
		protected.POST("/study-sessions", controllers.CreateStudySession())
		protected.GET("/study-sessions", controllers.GetMySessions())
		protected.PATCH("/study-sessions/:id/metrics", controllers.UpdateSessionMetrics())

		// Schedule recommendations
		protected.POST("/recommendations/generate", controllers.GenerateRecommendations())
		protected.GET("/recommendations/pending", controllers.GetPendingRecommendations())
		protected.POST("/recommendations/:id/respond", controllers.RespondToRecommendation())
		protected.GET("/recommendations/stats", controllers.GetRecommendationStats())
	}
}
