package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyageai/internal/models/request_models"
	"voyageai/internal/services"
	"voyageai/pkg/utils"
)

type ExplanationController struct {
	explanationService services.ExplanationServiceInterface
}

func NewExplanationController(explanationService services.ExplanationServiceInterface) *ExplanationController {
	return &ExplanationController{
		explanationService: explanationService,
	}
}

func (e *ExplanationController) GenerateTripExplanation(c *gin.Context) {
	destinationID := c.Param("destinationId")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	var req request_models.ExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	explanation, err := e.explanationService.GenerateTripExplanation(c.Request.Context(), destinationID, req.TravelDNA)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, explanation, "Trip explanation generated successfully")
}

func (e *ExplanationController) GenerateTripComparison(c *gin.Context) {
	destinationAID := c.Param("destinationA")
	destinationBID := c.Param("destinationB")
	if destinationAID == "" || destinationBID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Both destination IDs are required")
		return
	}

	var req request_models.ExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	comparison, err := e.explanationService.GenerateTripComparison(c.Request.Context(), destinationAID, destinationBID, req.TravelDNA)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comparison, "Trip comparison generated successfully")
}
