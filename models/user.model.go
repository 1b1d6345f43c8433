package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values stored on User.Role
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

type User struct {
	gorm.Model
	Email    string     `json:"email" gorm:"uniqueIndex;not null"`
	Username string     `json:"username" gorm:"uniqueIndex;not null"`
	Password string     `json:"-" gorm:"not null"`
	Role     string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN, SUPERADMIN
	IsOnline bool       `json:"is_online" gorm:"default:false"`
	LastSeen *time.Time `json:"last_seen"`
}

// RefreshToken is the persisted long-lived credential. A row existing is what
// makes the token revocable; logout and the cleanup job delete rows outright.
type RefreshToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}
