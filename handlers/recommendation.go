package handlers

import (
	"net/http"
	"strconv"

	userRepo "servicehub/database/repository/user"
	"servicehub/models"
	"servicehub/services/recommendation"
	"servicehub/services/tasks"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RecommendationHandler exposes the recommendation engine over HTTP.
type RecommendationHandler struct {
	Engine recommendation.RecommendationService
	Users  userRepo.UserRepository
	Queue  *asynq.Client // optional; nil disables async refresh
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(engine recommendation.RecommendationService, users userRepo.UserRepository, queue *asynq.Client) *RecommendationHandler {
	return &RecommendationHandler{Engine: engine, Users: users, Queue: queue}
}

// requireCustomer resolves the authenticated caller and ensures it is a
// customer account. Only customers receive recommendations.
func (h *RecommendationHandler) requireCustomer(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing user identity")
		return "", false
	}
	user, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unknown user", err.Error())
		return "", false
	}
	if user.Role != models.RoleCustomer {
		utils.JSONError(c, http.StatusForbidden, "Only customers can get recommendations", "")
		return "", false
	}
	return userID, true
}

// GetProviderRecommendationsHandler returns the hybrid provider ranking for
// the authenticated customer. Query parameters: category, location, limit.
// As a side effect the stored ranking rows for (customer, category) are
// replaced.
func (h *RecommendationHandler) GetProviderRecommendationsHandler(c *gin.Context) {
	customerID, ok := h.requireCustomer(c)
	if !ok {
		return
	}

	category := c.Query("category")
	location := c.Query("location")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit parameter", raw)
			return
		}
		limit = parsed
	}

	result := h.Engine.RecommendProviders(c.Request.Context(), recommendation.ProviderRequest{
		CustomerID: customerID,
		Category:   category,
		Location:   location,
		Limit:      limit,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": result.Recommendations,
		"metadata": gin.H{
			"category":             category,
			"location":             location,
			"totalRecommendations": len(result.Recommendations),
			"degradedSignals":      result.FellBack,
		},
	})
}

// GetLatestProviderRecommendationsHandler returns the most recently computed
// provider ranking without recomputing it. Intended companion to the refresh
// endpoint: enqueue a refresh, then poll here until cached is true.
func (h *RecommendationHandler) GetLatestProviderRecommendationsHandler(c *gin.Context) {
	customerID, ok := h.requireCustomer(c)
	if !ok {
		return
	}

	category := c.Query("category")
	recs, warm := h.Engine.LatestRanking(c.Request.Context(), customerID, category)
	if recs == nil {
		recs = []models.ProviderRecommendation{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"cached":          warm,
		"recommendations": recs,
		"metadata": gin.H{
			"category":             category,
			"totalRecommendations": len(recs),
		},
	})
}

// GetServiceRecommendationsHandler returns scored un-booked services for the
// authenticated customer. Query parameter: limit.
func (h *RecommendationHandler) GetServiceRecommendationsHandler(c *gin.Context) {
	customerID, ok := h.requireCustomer(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit parameter", raw)
			return
		}
		limit = parsed
	}

	recs := h.Engine.RecommendServices(c.Request.Context(), customerID, limit)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendations": recs,
		"metadata": gin.H{
			"totalRecommendations": len(recs),
		},
	})
}

// GetRecommendationHistoryHandler returns the stored ranking rows for the
// authenticated customer and optional category.
func (h *RecommendationHandler) GetRecommendationHistoryHandler(c *gin.Context) {
	customerID, ok := h.requireCustomer(c)
	if !ok {
		return
	}

	records, err := h.Engine.StoredRecommendations(c.Request.Context(), customerID, c.Query("category"))
	if err != nil {
		utils.GetLogger().Error("failed to load stored recommendations",
			zap.String("customerId", customerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load stored recommendations", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": records,
	})
}

// RefreshRecommendationsHandler enqueues a background recomputation of the
// caller's provider ranking instead of computing it on the request path.
func (h *RecommendationHandler) RefreshRecommendationsHandler(c *gin.Context) {
	customerID, ok := h.requireCustomer(c)
	if !ok {
		return
	}
	if h.Queue == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Async refresh is not configured", "")
		return
	}

	task, err := tasks.NewRankingRefreshTask(tasks.RefreshPayload{
		CustomerID: customerID,
		Category:   c.Query("category"),
		Location:   c.Query("location"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build refresh task", err.Error())
		return
	}
	if _, err := h.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Error("failed to enqueue ranking refresh",
			zap.String("customerId", customerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to enqueue refresh", "")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Ranking refresh enqueued"})
}
