package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/util"
)

// maxMenuPrice is the sanity ceiling on a menu price, in whole taka.
const maxMenuPrice = 100000

// MenuHandler handles admin operations on menu items.
type MenuHandler struct {
	db *gorm.DB
}

// NewMenuHandler wires a menu admin handler with its database dependency.
func NewMenuHandler(db *gorm.DB) *MenuHandler {
	return &MenuHandler{db: db}
}

// ListAll returns every menu item, including unavailable ones.
func (h *MenuHandler) ListAll(c *gin.Context) {
	var items []models.MenuItem
	errFind := h.db.WithContext(c.Request.Context()).
		Order("category, name").
		Find(&items).Error
	if errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// menuItemRequest defines the request body for creating or replacing an item.
type menuItemRequest struct {
	Name        string `json:"name"`
	NameBangla  string `json:"name_bangla"`
	Price       *int64 `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
}

// validate normalizes the payload and reports the first problem as an error
// message, or "" when the payload is acceptable.
func (r *menuItemRequest) validate() string {
	r.Name = util.Truncate(r.Name, 100)
	r.NameBangla = util.Truncate(r.NameBangla, 100)
	r.Category = util.Truncate(r.Category, 50)
	r.Description = util.Truncate(r.Description, 500)
	r.Image = util.Truncate(r.Image, 500)

	if r.Name == "" || r.Price == nil {
		return "Name and price are required"
	}
	if *r.Price < 0 || *r.Price > maxMenuPrice {
		return "Invalid price"
	}
	return ""
}

// Create adds a menu item.
func (h *MenuHandler) Create(c *gin.Context) {
	var body menuItemRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if msg := body.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	item := models.MenuItem{
		Name:        body.Name,
		NameBangla:  body.NameBangla,
		Price:       *body.Price,
		Category:    body.Category,
		Description: body.Description,
		Image:       body.Image,
		Available:   body.Available,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&item).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": item.ID})
}

// Update replaces every editable field of a menu item.
func (h *MenuHandler) Update(c *gin.Context) {
	id, errID := parseID(c.Param("id"))
	if errID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var body menuItemRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if msg := body.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	updates := map[string]any{
		"name":        body.Name,
		"name_bangla": body.NameBangla,
		"price":       *body.Price,
		"category":    body.Category,
		"description": body.Description,
		"image":       body.Image,
		"available":   body.Available,
	}
	errUpdate := h.db.WithContext(c.Request.Context()).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(updates).Error
	if errUpdate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a menu item.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, errID := parseID(c.Param("id"))
	if errID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if errDelete := h.db.WithContext(c.Request.Context()).Delete(&models.MenuItem{}, id).Error; errDelete != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseID parses a positive numeric route parameter.
func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}
