package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/util"
)

// emailPattern is a permissive shape check, not RFC validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler accepts messages from the public contact form.
type ContactHandler struct {
	db *gorm.DB
}

// NewContactHandler wires a contact handler with its database dependency.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

// contactRequest defines the request body for a contact submission.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Create validates and stores a contact message.
func (h *ContactHandler) Create(c *gin.Context) {
	var body contactRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := util.Truncate(body.Name, 100)
	email := strings.ToLower(util.Truncate(body.Email, 254))
	message := util.Truncate(body.Message, 2000)
	if name == "" || email == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	row := models.ContactMessage{Name: name, Email: email, Message: message}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&row).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": row.ID})
}
