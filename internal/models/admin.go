package models

import "time"

// Admin represents an administrator account stored in the database.
type Admin struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Username string `gorm:"type:text;not null;uniqueIndex" json:"username"` // Unique login name.

	// PasswordHash is the salted PBKDF2 digest in "salt_hex:digest_hex" form.
	PasswordHash string `gorm:"column:password_hash;type:text;not null" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}

// TableName keeps the table name compatible with the existing store.
func (Admin) TableName() string { return "admins" }
