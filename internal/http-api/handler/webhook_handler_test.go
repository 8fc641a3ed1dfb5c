package handler_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ratemyprompt/internal/http-api/handler"
	"ratemyprompt/internal/http-api/models"
	"ratemyprompt/internal/http-api/service"
	"ratemyprompt/internal/http-api/webhook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookTestSecret = "whsec_dGhpcy1pcy1hLXRlc3Qtd2ViaG9vay1zZWNyZXQ="

type recordingIdentityService struct {
	synced  []service.Identity
	removed []string
}

func (r *recordingIdentityService) Sync(ctx context.Context, id service.Identity) (*models.User, error) {
	r.synced = append(r.synced, id)
	return &models.User{ID: id.ID}, nil
}

func (r *recordingIdentityService) Remove(ctx context.Context, userID string) error {
	r.removed = append(r.removed, userID)
	return nil
}

func webhookRouter(identity service.IdentityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := r.Group("/api")
	handler.NewWebhookHandler(webhookTestSecret, identity, logger).RegisterRoutes(api)
	return r
}

func deliver(t *testing.T, r *gin.Engine, body string, signed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/identity", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signed {
		msgID := "msg_test"
		ts := fmt.Sprintf("%d", time.Now().Unix())
		sig, err := webhook.Sign(webhookTestSecret, msgID, ts, []byte(body))
		require.NoError(t, err)
		req.Header.Set("svix-id", msgID)
		req.Header.Set("svix-timestamp", ts)
		req.Header.Set("svix-signature", sig)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_UserCreatedSyncsAccount(t *testing.T) {
	identity := &recordingIdentityService{}
	r := webhookRouter(identity)

	body := `{
		"type": "user.created",
		"data": {
			"id": "user_99",
			"first_name": "Ada",
			"last_name": "Lovelace",
			"email_addresses": [{"id": "em_1", "email_address": "ada@example.com"}],
			"primary_email_address_id": "em_1"
		}
	}`
	w := deliver(t, r, body, true)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, identity.synced, 1)
	assert.Equal(t, "user_99", identity.synced[0].ID)
	assert.Equal(t, "ada@example.com", identity.synced[0].Email)
	assert.Equal(t, "Ada Lovelace", identity.synced[0].Name)
}

func TestWebhook_UserDeletedRemovesAccount(t *testing.T) {
	identity := &recordingIdentityService{}
	r := webhookRouter(identity)

	w := deliver(t, r, `{"type":"user.deleted","data":{"id":"user_99"}}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"user_99"}, identity.removed)
}

func TestWebhook_UnsignedDeliveryRejected(t *testing.T) {
	identity := &recordingIdentityService{}
	r := webhookRouter(identity)

	w := deliver(t, r, `{"type":"user.created","data":{"id":"user_99"}}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, identity.synced)
}

func TestWebhook_UnknownEventAcked(t *testing.T) {
	identity := &recordingIdentityService{}
	r := webhookRouter(identity)

	w := deliver(t, r, `{"type":"session.created","data":{"id":"sess_1"}}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, identity.synced)
	assert.Empty(t, identity.removed)
}

func TestWebhook_CreatedEventWithoutIDRejected(t *testing.T) {
	identity := &recordingIdentityService{}
	r := webhookRouter(identity)

	w := deliver(t, r, `{"type":"user.created","data":{}}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, identity.synced)
}
