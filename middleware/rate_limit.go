package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storelane/storefront-api/cache"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 10
)

// RateLimiter throttles by client IP using a Redis counter. With the
// cache disabled requests pass through.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache.Client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := cache.Client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			cache.Client.Expire(c.Request.Context(), key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
