package handlers

import (
	"context"
	"errors"
	"net/http"

	"practicequiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PracticeHandler struct {
	Service *service.PracticeService
}

func NewPracticeHandler(s *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{Service: s}
}

// GeneratePracticeQuiz builds an adaptive question set for the authenticated
// user and creates the backing attempt.
func (h *PracticeHandler) GeneratePracticeQuiz(c *gin.Context) {
	var req struct {
		PatternID string `json:"pattern_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	quiz, err := h.Service.GeneratePracticeQuiz(context.Background(), userID, req.PatternID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No learning profile for this pattern",
				"code":  "PROFILE_NOT_FOUND",
			})
		case errors.Is(err, service.ErrNoQuestionsForPattern):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No questions available for this pattern",
				"code":  "NO_QUESTIONS_FOR_PATTERN",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to generate practice quiz",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attempt_id": quiz.AttemptID,
		"token":      quiz.Token,
		"questions":  quiz.Questions,
		"count":      len(quiz.Questions),
	})
}
