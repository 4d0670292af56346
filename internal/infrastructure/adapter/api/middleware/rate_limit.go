package middleware

import (
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter throttles submissions per client IP with a token bucket each.
// Idle buckets are evicted after the configured idle period.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
	logger   coreport.Logger
}

// NewRateLimiter creates a limiter allowing rps requests per second per client,
// with bursts up to burst. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int, idle time.Duration, logger coreport.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: cache.New(idle, 2*idle),
		logger:   logger,
	}
}

// Allow reports whether the client may proceed now
func (l *RateLimiter) Allow(client string) bool {
	if l.limit <= 0 {
		return true
	}

	if v, ok := l.limiters.Get(client); ok {
		// touch to keep an active client's bucket alive
		l.limiters.SetDefault(client, v)
		return v.(*rate.Limiter).Allow()
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.limiters.Add(client, limiter, cache.DefaultExpiration); err != nil {
		// lost the race, use the winner's bucket
		if v, ok := l.limiters.Get(client); ok {
			return v.(*rate.Limiter).Allow()
		}
	}
	return limiter.Allow()
}

// Middleware rejects throttled clients with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		l.logger.Warn("Rate limit exceeded", map[string]any{
			"ip":         c.ClientIP(),
			"path":       c.Request.URL.Path,
			"request_id": RequestID(c),
		})
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrRateLimited),
			Message: domainerr.MsgRateLimited,
		})
	}
}
