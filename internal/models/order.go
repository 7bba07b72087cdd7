package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses an admin may assign.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether status is one an admin may assign.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer order placed from the public storefront.
type Order struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	CustomerName string `gorm:"column:customer_name;type:text;not null" json:"customer_name"`
	Phone        string `gorm:"type:text;not null" json:"phone"`
	Address      string `gorm:"type:text" json:"address"`

	Items datatypes.JSON `gorm:"not null" json:"items"` // Cart line items as submitted.

	Total         int64  `gorm:"not null" json:"total"` // Whole taka.
	PaymentMethod string `gorm:"column:payment_method;type:text" json:"payment_method"`

	Status string `gorm:"type:text;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName keeps the table name compatible with the existing store.
func (Order) TableName() string { return "orders" }
