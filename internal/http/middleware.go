// Package http provides the middleware shared by the public storefront and
// admin API route groups.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// maxJSONBodyBytes caps request bodies on public write endpoints.
const maxJSONBodyBytes = 10 << 10 // 10 KB

// SecurityHeaders sets the baseline response headers on every request.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}

// BodySizeLimit rejects oversized request bodies before handlers read them.
func BodySizeLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBodyBytes)
		}
		c.Next()
	}
}

// RequestLogger logs each request with method, path, status, and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.WithFields(fields).Error("request failed")
			return
		}
		log.WithFields(fields).Debug("request")
	}
}
