package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ratemyprompt/internal/http-api/dto"
	"ratemyprompt/internal/http-api/middleware"
	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type PromptHandler struct {
	promptService service.PromptService
	sectionCap    int
}

func NewPromptHandler(promptService service.PromptService, sectionCap int) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		sectionCap:    sectionCap,
	}
}

// RegisterRoutes registers prompt-related routes
func (h *PromptHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	prompts := rg.Group("/prompts")
	{
		prompts.GET("", h.List)
		prompts.GET("/sections", h.Sections)
		prompts.GET("/:id", h.GetByID)
		prompts.POST("", optionalAuth, h.Create)
	}
}

// List handles discovery: all prompts, a category, the trending lens or a
// free-text search, selected by query parameters.
// GET /api/prompts?categoryId=&search=
func (h *PromptHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	view := service.DiscoveryView{
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
	}

	prompts, err := h.promptService.Discover(ctx, view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelsToPromptResponses(prompts))
}

// Sections builds the sectioned homepage view: trending shelf plus capped
// per-category sections.
// GET /api/prompts/sections?cap=10
func (h *PromptHandler) Sections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cap := h.sectionCap
	if raw := c.Query("cap"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cap"})
			return
		}
		cap = parsed
	}

	view, err := h.promptService.Home(ctx, cap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromHomeView(view))
}

// GetByID returns one prompt with nested ratings and category.
// GET /api/prompts/:id
func (h *PromptHandler) GetByID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	prompt, err := h.promptService.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToPromptResponse(prompt))
}

// Create submits a new prompt. The author is the authenticated caller when a
// session was presented, otherwise the prompt is anonymous.
// POST /api/prompts
func (h *PromptHandler) Create(c *gin.Context) {
	var req dto.CreatePromptDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt := &models.Prompt{
		Title:      req.Title,
		Text:       req.Text,
		Tags:       datatypes.NewJSONSlice(req.Tags),
		Llms:       datatypes.NewJSONSlice(req.Llms),
		CategoryID: req.CategoryID,
	}

	// Anonymous authorship is allowed; OptionalAuth sets userID only for a
	// valid session
	if userID, exists := c.Get(middleware.ContextUserIDKey); exists {
		id := userID.(string)
		prompt.AuthorID = &id
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.promptService.Create(ctx, prompt); err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToPromptResponse(prompt))
}
