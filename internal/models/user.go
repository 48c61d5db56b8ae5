package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is the credential store backing /api/auth.
type AuthUser struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	EmailConfirmed bool      `gorm:"default:false" json:"email_confirmed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserProfile struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"size:255;index" json:"email"`
	FullName string    `gorm:"size:255" json:"full_name"`
	Role     string    `gorm:"size:20;default:'customer'" json:"role"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
