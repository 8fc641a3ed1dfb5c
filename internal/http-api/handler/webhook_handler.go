package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"ratemyprompt/internal/http-api/dto"
	"ratemyprompt/internal/http-api/service"
	"ratemyprompt/internal/http-api/webhook"

	"github.com/gin-gonic/gin"
)

// WebhookHandler consumes identity-provider account events. This is the only
// place in the system that verifies webhook signatures.
type WebhookHandler struct {
	secret   string
	identity service.IdentityService
	logger   *slog.Logger
}

func NewWebhookHandler(secret string, identity service.IdentityService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret:   secret,
		identity: identity,
		logger:   logger,
	}
}

func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/identity", h.Handle)
}

// Handle verifies and applies one account event.
// POST /api/webhooks/identity
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		return
	}

	err = webhook.Verify(
		h.secret,
		c.GetHeader("svix-id"),
		c.GetHeader("svix-timestamp"),
		c.GetHeader("svix-signature"),
		body,
		time.Now(),
	)
	if err != nil {
		h.logger.Warn("rejected webhook delivery", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook signature"})
		return
	}

	var event dto.IdentityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	switch event.Type {
	case "user.created", "user.updated":
		if event.Data.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "event missing user id"})
			return
		}
		_, err = h.identity.Sync(ctx, service.Identity{
			ID:       event.Data.ID,
			Email:    event.Data.PrimaryEmail(),
			Name:     event.Data.FullName(),
			ImageURL: event.Data.ImageURL,
		})
	case "user.deleted":
		if event.Data.ID != "" {
			err = h.identity.Remove(ctx, event.Data.ID)
		}
	default:
		// Unknown event types are acknowledged so the provider stops
		// redelivering them
		h.logger.Debug("ignoring webhook event", "type", event.Type)
	}

	if err != nil {
		h.logger.Error("failed to apply webhook event", "type", event.Type, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "webhook processed"})
}
