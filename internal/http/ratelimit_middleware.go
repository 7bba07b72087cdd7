package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rakibul-dev/teastall/internal/ratelimit"
)

// RateLimit throttles an endpoint by client IP. name scopes the limiter key
// so endpoints sharing the limiter do not share counters; message is the
// human-readable denial text.
func RateLimit(limiter *ratelimit.Limiter, name string, limit int, window time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()
		if !limiter.Allow(key, limit, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
