package routes

import (
	"net/http"
	"time"

	"servicehub/handlers"
	"servicehub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRecommendationRoutes registers the recommendation endpoints.
func RegisterRecommendationRoutes(r *gin.Engine, rh *handlers.RecommendationHandler) {
	api := r.Group("/api/recommendations")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/providers", rh.GetProviderRecommendationsHandler)
		api.GET("/providers/latest", rh.GetLatestProviderRecommendationsHandler)
		api.GET("/services", rh.GetServiceRecommendationsHandler)
		api.GET("/history", rh.GetRecommendationHistoryHandler)
		api.POST("/refresh", rh.RefreshRecommendationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "servicehub recommendation engine"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, rh *handlers.RecommendationHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterRecommendationRoutes(r, rh)
}
