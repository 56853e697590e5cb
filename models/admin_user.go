package models

import (
	"time"
)

// AdminUser can log in to the back-office endpoints (contact list, chat
// replies, email queue). Password is a bcrypt hash.
type AdminUser struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminLogin is the login payload.
type AdminLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
