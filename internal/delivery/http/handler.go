package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealcraft/backend/internal/domain"
	"github.com/mealcraft/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scalingService *usecase.ScalingService
}

// NewHandler creates a new HTTP handler
func NewHandler(scalingService *usecase.ScalingService) *Handler {
	return &Handler{
		scalingService: scalingService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mealcraft-backend",
		"version": "1.0.0",
	})
}

// ScaleRecipe handles recipe scaling requests
func (h *Handler) ScaleRecipe(c *gin.Context) {
	if h.scalingService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Scaling service not configured",
		})
		return
	}

	var request domain.ScaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := h.scalingService.ScaleRecipe(c.Request.Context(), &request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrTooManyIngredients):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
