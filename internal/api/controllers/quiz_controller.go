package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyageai/internal/models/domain_models"
	"voyageai/internal/models/request_models"
	"voyageai/internal/services"
	"voyageai/pkg/utils"
)

type QuizController struct {
	profilerService services.ProfilerServiceInterface
}

func NewQuizController(profilerService services.ProfilerServiceInterface) *QuizController {
	return &QuizController{
		profilerService: profilerService,
	}
}

func (q *QuizController) GetQuizQuestions(c *gin.Context) {
	utils.RespondSuccess(c, q.profilerService.GetQuizQuestions(), "Quiz questions fetched successfully")
}

func (q *QuizController) AnalyzeResponses(c *gin.Context) {
	var submission request_models.QuizSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := q.profilerService.AnalyzeResponses(submission.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Travel DNA analyzed successfully")
}

func (q *QuizController) GetPersonalityInsights(c *gin.Context) {
	personality := domain_models.TravelPersonality(c.Param("type"))
	if personality == "" {
		utils.RespondError(c, http.StatusBadRequest, "Personality type is required")
		return
	}

	details, err := q.profilerService.GetPersonalityInsights(personality)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Personality insights fetched successfully")
}
