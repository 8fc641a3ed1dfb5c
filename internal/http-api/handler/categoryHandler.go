package handler

import (
	"context"
	"net/http"
	"time"

	"ratemyprompt/internal/http-api/dto"
	"ratemyprompt/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
}

// List returns all categories with their prompt counts.
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAllWithCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := make([]dto.CategoryWithCountResponse, 0, len(list))
	for _, c2 := range list {
		resp = append(resp, dto.CategoryWithCountResponse{
			CategoryResponse: dto.CategoryFromModel(c2.Category),
			PromptCount:      c2.PromptCount,
		})
	}
	c.JSON(http.StatusOK, resp)
}
