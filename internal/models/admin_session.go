package models

import "time"

// AdminSession is one active admin login, identified by an opaque bearer token.
//
// Expired rows are filtered at lookup time rather than swept; logging in
// replaces any prior sessions for the same admin.
type AdminSession struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	AdminID uint64 `gorm:"not null;index" json:"admin_id"` // Owning admin.

	Token string `gorm:"type:text;not null;uniqueIndex" json:"-"` // Opaque bearer token, hex encoded.

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`                // Absolute expiry, fixed at issuance.
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"` // Creation timestamp.
}

// TableName keeps the table name compatible with the existing store.
func (AdminSession) TableName() string { return "admin_sessions" }
