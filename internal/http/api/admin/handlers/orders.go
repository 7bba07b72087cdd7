package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
)

// OrderHandler handles admin operations on customer orders.
type OrderHandler struct {
	db *gorm.DB
}

// NewOrderHandler wires an order admin handler with its database dependency.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// List returns all orders, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	var orders []models.Order
	errFind := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&orders).Error
	if errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// updateOrderStatusRequest defines the request body for a status change.
type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an order through its fulfilment lifecycle.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, errID := parseID(c.Param("id"))
	if errID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var body updateOrderStatusRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", body.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
