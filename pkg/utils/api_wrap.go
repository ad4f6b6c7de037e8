package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel service errors to HTTP statuses with
// actionable messages. Anything unrecognized is a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMalformedPreferences):
		RespondError(c, http.StatusBadRequest, "Budget range must satisfy 0 <= min <= max and dates must satisfy start <= end")
	case errors.Is(err, ErrInvalidResponse):
		RespondError(c, http.StatusBadRequest, "One or more answers do not match the question's options")
	case errors.Is(err, ErrEmptyQuizResponses):
		RespondError(c, http.StatusBadRequest, "Quiz submission contains no answers")
	case errors.Is(err, ErrUnknownPersonality):
		RespondError(c, http.StatusBadRequest, "Unknown personality type")
	case errors.Is(err, ErrDestinationNotFound):
		RespondError(c, http.StatusNotFound, "Destination not found")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
