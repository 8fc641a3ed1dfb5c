package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ratemyprompt/internal/http-api/dto"
	"ratemyprompt/internal/http-api/middleware"
	"ratemyprompt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	ratings := rg.Group("/prompts/:id/ratings")
	{
		// Public read access
		ratings.GET("", h.List)
		ratings.GET("/average", h.GetAverage)

		// Submitting requires a resolved identity
		ratings.POST("", requireAuth, h.Submit)
	}

	// Recent ratings across all prompts
	rg.GET("/ratings", h.ListRecent)
}

// Submit creates or overwrites the caller's rating for a prompt. 201 on a new
// rating, 200 when an existing one was replaced.
// POST /api/prompts/:id/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	promptID := c.Param("id")

	// Get user ID from context (set by RequireAuth)
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rating, created, err := h.ratingService.Submit(ctx, promptID, userID.(string), req.Llm, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScore):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPromptNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.FromModelToRatingResponse(rating))
}

// List retrieves all ratings for a prompt, newest first.
// GET /api/prompts/:id/ratings
func (h *RatingHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ratings, err := h.ratingService.ListByPrompt(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetAverage retrieves the aggregate for a prompt, served from the cache when
// warm.
// GET /api/prompts/:id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.ratingService.PromptAggregate(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListRecent retrieves the latest ratings across all prompts.
// GET /api/ratings
func (h *RatingHandler) ListRecent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ratings, err := h.ratingService.ListRecent(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := make([]dto.RatingFeedItem, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, *dto.FromModelToRatingFeedItem(&ratings[i]))
	}
	c.JSON(http.StatusOK, resp)
}
