package models

import "time"

// MenuItem is one entry on the public menu. Prices are whole taka.
type MenuItem struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name        string `gorm:"type:text;not null" json:"name"`
	NameBangla  string `gorm:"column:name_bangla;type:text" json:"name_bangla"` // Bangla display name.
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `gorm:"type:text" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:text" json:"image"` // Relative image URL.

	Available bool `gorm:"not null;default:true" json:"available"` // Hidden from the public menu when false.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName keeps the table name compatible with the existing store.
func (MenuItem) TableName() string { return "menu_items" }
