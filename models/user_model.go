package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleRegular = "regular"
)

// IsPrivileged reports whether the role may approve requests and manage
// other users.
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"unique"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}
