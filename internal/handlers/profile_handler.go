package handlers

import (
	"context"
	"errors"
	"net/http"

	"practicequiz-service/internal/models"
	"practicequiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	Service *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	patternID := c.Param("patternId")

	profile, err := h.Service.GetProfile(context.Background(), userID, patternID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No learning profile for this pattern",
				"code":  "PROFILE_NOT_FOUND",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req struct {
		TopicConfidence      map[string]float64 `json:"topic_confidence"`
		BloomMastery         map[string]float64 `json:"bloom_mastery"`
		DifficultyPreference map[string]float64 `json:"difficulty_preference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &models.LearnerProfile{
		UserID:               c.GetHeader("X-User-ID"),
		PatternID:            c.Param("patternId"),
		TopicConfidence:      req.TopicConfidence,
		BloomMastery:         req.BloomMastery,
		DifficultyPreference: req.DifficultyPreference,
	}
	if err := h.Service.UpsertProfile(context.Background(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
