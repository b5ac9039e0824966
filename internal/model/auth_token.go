package model

import "time"

// AuthToken mirrors the auth_tokens table. No handler issues or checks
// tokens today; the table is migrated for schema compatibility with clients
// that provision it externally.
type AuthToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"uniqueIndex;not null"`
	TokenType string `gorm:"not null"` // session | password_reset | email_verification
	ExpiresAt time.Time
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}
