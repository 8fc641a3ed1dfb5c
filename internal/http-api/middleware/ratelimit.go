package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's bucket survives without traffic
// before a sweep reclaims it.
const limiterIdleTTL = 3 * time.Minute

// sweepEvery bounds how often the eviction pass runs.
const sweepEvery = time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a per-client token bucket across the whole API. This is
// generic server hygiene, not per-feature abuse control - rating submission
// gets no special treatment. Buckets idle past limiterIdleTTL are swept so a
// scan over many source addresses cannot grow the map forever.
func RateLimit(rps, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*clientLimiter)
	lastSweep := time.Now()

	limiterFor := func(key string, now time.Time) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) >= sweepEvery {
			sweepIdleLimiters(limiters, now, limiterIdleTTL)
			lastSweep = now
		}

		cl, ok := limiters[key]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			limiters[key] = cl
		}
		cl.lastSeen = now
		return cl.limiter
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP(), time.Now()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// sweepIdleLimiters drops buckets not seen within ttl. Caller holds the lock.
func sweepIdleLimiters(limiters map[string]*clientLimiter, now time.Time, ttl time.Duration) {
	for key, cl := range limiters {
		if now.Sub(cl.lastSeen) > ttl {
			delete(limiters, key)
		}
	}
}
