package handlers

import (
	"context"
	"net/http"
	"time"

	"practicequiz-service/internal/models"
	"practicequiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	id := c.Param("id")
	attempt, err := h.Service.GetAttempt(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// SubmitAnswer appends an answered question to an in-progress attempt.
func (h *AttemptHandler) SubmitAnswer(c *gin.Context) {
	attemptID := c.Param("id")

	var answerData struct {
		QuestionID   string  `json:"question_id" binding:"required"`
		UserAnswer   string  `json:"user_answer" binding:"required"`
		IsCorrect    bool    `json:"is_correct"`
		PointsEarned float64 `json:"points_earned"`
		TimeSpent    int     `json:"time_spent_seconds"`
	}
	if err := c.ShouldBindJSON(&answerData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	answer := models.AttemptAnswer{
		AttemptID:        attemptID,
		QuestionID:       answerData.QuestionID,
		UserAnswer:       answerData.UserAnswer,
		IsCorrect:        answerData.IsCorrect,
		PointsEarned:     answerData.PointsEarned,
		TimeSpentSeconds: answerData.TimeSpent,
		AnsweredAt:       time.Now(),
	}
	if err := h.Service.RecordAnswer(context.Background(), &answer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to record answer",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"answer_recorded": true,
		"answer_id":       answer.ID,
	})
}

func (h *AttemptHandler) GetAnswers(c *gin.Context) {
	attemptID := c.Param("id")
	answers, err := h.Service.GetAnswers(context.Background(), attemptID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, answers)
}

// SubmitAttempt closes the attempt; grading happens elsewhere.
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.SubmitAttempt(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to submit attempt",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attempt submitted"})
}
