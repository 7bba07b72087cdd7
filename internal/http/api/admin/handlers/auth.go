package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/rakibul-dev/teastall/internal/auth"
	relayhttp "github.com/rakibul-dev/teastall/internal/http"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	auth *auth.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// loginRequest defines the request body for admin login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an admin and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	username := strings.TrimSpace(body.Username)
	password := body.Password
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	result, errLogin := h.auth.Login(c.Request.Context(), username, password)
	if errLogin != nil {
		if errLogin == auth.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.WithError(errLogin).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"admin": gin.H{
			"id":       result.Admin.ID,
			"username": result.Admin.Username,
		},
	})
}

// Logout deletes the caller's session. Always succeeds for a valid session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if errLogout := h.auth.Logout(c.Request.Context(), relayhttp.AdminToken(c)); errLogout != nil {
		log.WithError(errLogout).Error("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// changePasswordRequest defines the request body for a password change.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword re-keys the caller's credential and invalidates every other
// session. Clients must treat success as a forced logout.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body changePasswordRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and new password (min 6 chars) required"})
		return
	}

	errChange := h.auth.ChangePassword(
		c.Request.Context(),
		relayhttp.AdminID(c),
		relayhttp.AdminToken(c),
		body.CurrentPassword,
		body.NewPassword,
	)
	if errChange != nil {
		switch errChange {
		case auth.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and new password (min 6 chars) required"})
		case auth.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		default:
			log.WithError(errChange).Error("change password failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}
