package handler

import (
	"net/http"

	"ratemyprompt/internal/catalog"

	"github.com/gin-gonic/gin"
)

type LLMHandler struct{}

func NewLLMHandler() *LLMHandler {
	return &LLMHandler{}
}

func (h *LLMHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/llms", h.List)
}

// List returns the static model catalog.
// GET /api/llms
func (h *LLMHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}
