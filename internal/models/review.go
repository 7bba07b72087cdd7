package models

import "time"

// Review is a customer review shown on the storefront once approved.
type Review struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name   string `gorm:"type:text;not null" json:"name"`
	Rating int    `gorm:"not null" json:"rating"` // 1 through 5.
	Text   string `gorm:"type:text;not null" json:"text"`
	Role   string `gorm:"type:text;not null;default:'Customer'" json:"role"`
	Avatar string `gorm:"type:text" json:"avatar"` // Avatar image URL.

	Approved bool `gorm:"not null;default:false" json:"approved"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName keeps the table name compatible with the existing store.
func (Review) TableName() string { return "reviews" }
