package model

import "time"

// Roles a user can hold. Routes do not currently enforce them; the field is
// persisted and validated on input only.
const (
	RoleAdmin     = "admin"
	RoleSeller    = "seller"
	RoleWarehouse = "warehouse"
	RoleUser      = "user"
)

// User stores system users. PasswordHash is a bcrypt digest and must never
// be serialized into any response.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
