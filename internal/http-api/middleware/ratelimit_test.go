package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(rps, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rps, burst))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func getAs(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_BlocksPastBurst(t *testing.T) {
	r := rateLimitedRouter(1, 2)

	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, getAs(r, "10.0.0.1:1234"))
}

func TestRateLimit_ClientsAreIndependent(t *testing.T) {
	r := rateLimitedRouter(1, 1)

	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, getAs(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, getAs(r, "10.0.0.2:1234"), "one client's exhaustion does not affect another")
}

func TestSweepIdleLimiters(t *testing.T) {
	now := time.Now()
	limiters := map[string]*clientLimiter{
		"stale":  {limiter: rate.NewLimiter(1, 1), lastSeen: now.Add(-10 * time.Minute)},
		"recent": {limiter: rate.NewLimiter(1, 1), lastSeen: now.Add(-time.Second)},
	}

	sweepIdleLimiters(limiters, now, limiterIdleTTL)

	assert.NotContains(t, limiters, "stale")
	assert.Contains(t, limiters, "recent")
}
