package models

import "time"

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName keeps the table name compatible with the existing store.
func (ContactMessage) TableName() string { return "contact_messages" }
