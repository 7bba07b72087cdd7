package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
)

// MessageHandler handles admin operations on contact messages.
type MessageHandler struct {
	db *gorm.DB
}

// NewMessageHandler wires a message handler with its database dependency.
func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{db: db}
}

// List returns all contact messages, newest first.
func (h *MessageHandler) List(c *gin.Context) {
	var messages []models.ContactMessage
	errFind := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&messages).Error
	if errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Get returns a single contact message.
func (h *MessageHandler) Get(c *gin.Context) {
	id, errID := parseID(c.Param("id"))
	if errID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var message models.ContactMessage
	if errFind := h.db.WithContext(c.Request.Context()).First(&message, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch message"})
		return
	}
	c.JSON(http.StatusOK, message)
}

// Delete removes a contact message.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, errID := parseID(c.Param("id"))
	if errID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if errDelete := h.db.WithContext(c.Request.Context()).Delete(&models.ContactMessage{}, id).Error; errDelete != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
