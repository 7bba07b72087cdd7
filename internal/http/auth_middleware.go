package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/rakibul-dev/teastall/internal/auth"
)

// Context keys set by AdminAuth for downstream handlers.
const (
	// AdminIDKey holds the authenticated admin's ID as uint64.
	AdminIDKey = "adminID"
	// AdminTokenKey holds the bearer token the request authenticated with.
	AdminTokenKey = "adminToken"
)

// AdminAuth validates the Authorization bearer token against the session
// store and loads the admin ID into the gin context. Missing, malformed,
// unknown, and expired tokens all abort with 401.
func AdminAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		token = strings.TrimSpace(token)

		adminID, errAuth := authService.Authenticate(c.Request.Context(), token)
		if errAuth != nil {
			if errAuth != auth.ErrInvalidToken {
				log.WithError(errAuth).Error("session lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Set(AdminTokenKey, token)
		c.Next()
	}
}

// AdminID extracts the authenticated admin's ID from the gin context.
func AdminID(c *gin.Context) uint64 {
	value, exists := c.Get(AdminIDKey)
	if !exists {
		return 0
	}
	id, ok := value.(uint64)
	if !ok {
		return 0
	}
	return id
}

// AdminToken extracts the authenticating bearer token from the gin context.
func AdminToken(c *gin.Context) string {
	value, exists := c.Get(AdminTokenKey)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}
