package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
)

// MenuHandler serves the public menu.
type MenuHandler struct {
	db *gorm.DB
}

// NewMenuHandler wires a menu handler with its database dependency.
func NewMenuHandler(db *gorm.DB) *MenuHandler {
	return &MenuHandler{db: db}
}

// List returns the available menu items, grouped by category.
func (h *MenuHandler) List(c *gin.Context) {
	var items []models.MenuItem
	errFind := h.db.WithContext(c.Request.Context()).
		Where("available = ?", true).
		Order("category, name").
		Find(&items).Error
	if errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}
