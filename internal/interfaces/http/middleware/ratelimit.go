package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"quarry/internal/infrastructure/ratelimit"
	"quarry/internal/shared/logger"
	"quarry/internal/shared/utils"
)

// RateLimit throttles requests per client IP. On limiter backend failure
// the request is allowed through; throttling is best effort.
func RateLimit(limiter ratelimit.RateLimiter, requestsPerMinute int, log logger.Interface) gin.HandlerFunc {
	config := ratelimit.RateLimitConfig{
		RequestsPerMinute: requestsPerMinute,
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
