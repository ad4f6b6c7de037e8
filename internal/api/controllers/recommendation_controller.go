package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyageai/internal/models/request_models"
	"voyageai/internal/services"
	"voyageai/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GetRecommendations scores the whole catalog against the submitted
// preferences and returns the list sorted by confidence, best first. An
// optional `limit` query param truncates the result.
func (r *RecommendationController) GetRecommendations(c *gin.Context) {
	var prefs request_models.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be a positive integer)")
			return
		}
		limit = parsed
	}

	recommendations, err := r.recommendationService.CalculateRecommendations(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].ConfidenceScore > recommendations[j].ConfidenceScore
	})
	if limit > 0 && limit < len(recommendations) {
		recommendations = recommendations[:limit]
	}

	utils.RespondSuccess(c, recommendations, "Recommendations calculated successfully")
}

func (r *RecommendationController) GetRecommendationBreakdown(c *gin.Context) {
	destinationID := c.Param("destinationId")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	var prefs request_models.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	breakdown, err := r.recommendationService.GetRecommendationBreakdown(c.Request.Context(), destinationID, prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Recommendation breakdown calculated successfully")
}
