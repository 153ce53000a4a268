package handlers

import (
	"context"
	"net/http"

	"practicequiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PatternHandler struct {
	Service *service.PatternService
}

func NewPatternHandler(s *service.PatternService) *PatternHandler {
	return &PatternHandler{Service: s}
}

func (h *PatternHandler) GetAllPatterns(c *gin.Context) {
	patterns, err := h.Service.GetAllPatterns(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patterns)
}

func (h *PatternHandler) GetPatternByID(c *gin.Context) {
	id := c.Param("id")
	pattern, err := h.Service.GetPatternByID(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pattern == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pattern not found"})
		return
	}
	c.JSON(http.StatusOK, pattern)
}

func (h *PatternHandler) GetPatternsByCategory(c *gin.Context) {
	category := c.Param("category")
	patterns, err := h.Service.GetPatternsByCategory(context.Background(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patterns)
}
