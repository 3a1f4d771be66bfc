package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/aevon-lab/grocery-tracker/internal/auth"
	httperr "github.com/aevon-lab/grocery-tracker/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// idleLimiterTTL bounds how long a user's limiter survives without requests.
const idleLimiterTTL = 30 * time.Minute

// RateLimiter hands out one token bucket per authenticated user.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: cache.New(idleLimiterTTL, idleLimiterTTL),
		limit:    rate.Limit(float64(requestsPerMinute) / 60),
		burst:    burst,
	}
}

func (l *RateLimiter) limiterFor(userID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(userID); ok {
		lim := v.(*rate.Limiter)
		l.limiters.SetDefault(userID, lim)
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(userID, lim)
	return lim
}

// Middleware must run after auth.Middleware; requests without a user share one bucket.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := auth.UserID(c)
		if !l.limiterFor(userID).Allow() {
			c.Header("Retry-After", "60")
			httperr.Write(c, httperr.New(http.StatusTooManyRequests, httperr.HttpRateLimitedError, "Rate limit exceeded"))
			return
		}
		c.Next()
	}
}
