package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
	"github.com/rakibul-dev/teastall/internal/util"
)

// phonePattern accepts digits plus common separators, 10 to 20 characters.
var phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,20}$`)

// maxOrderItemsBytes caps the serialized cart payload.
const maxOrderItemsBytes = 5000

// maxOrderTotal is the sanity ceiling on an order total, in whole taka.
const maxOrderTotal = 1000000

// OrderHandler accepts customer orders from the public storefront.
type OrderHandler struct {
	db *gorm.DB
}

// NewOrderHandler wires an order handler with its database dependency.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// createOrderRequest defines the request body for placing an order.
type createOrderRequest struct {
	CustomerName  string          `json:"customer_name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Items         json.RawMessage `json:"items"` // Cart line items, stored as submitted.
	Total         *int64          `json:"total"`
	PaymentMethod string          `json:"payment_method"`
}

// Create validates and stores a customer order with status "pending".
func (h *OrderHandler) Create(c *gin.Context) {
	var body createOrderRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	customerName := util.Truncate(body.CustomerName, 100)
	phone := util.Truncate(body.Phone, 20)
	if customerName == "" || phone == "" || len(body.Items) == 0 || body.Total == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !phonePattern.MatchString(phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}
	if *body.Total < 0 || *body.Total > maxOrderTotal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid total amount"})
		return
	}
	if len(body.Items) > maxOrderItemsBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order has too many items"})
		return
	}

	order := models.Order{
		CustomerName:  customerName,
		Phone:         phone,
		Address:       util.Truncate(body.Address, 500),
		Items:         datatypes.JSON(body.Items),
		Total:         *body.Total,
		PaymentMethod: util.Truncate(body.PaymentMethod, 50),
		Status:        models.OrderStatusPending,
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&order).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": order.ID})
}
