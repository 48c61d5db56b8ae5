package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VendorApplication struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	SalonName       string `gorm:"size:255;not null" json:"salon_name"`
	BusinessAddress string `gorm:"size:255" json:"business_address"`
	City            string `gorm:"size:100" json:"city"`
	State           string `gorm:"size:100" json:"state"`
	Country         string `gorm:"size:10;default:'AU'" json:"country"`
	PostalCode      string `gorm:"size:20" json:"postal_code"`

	OwnerName string `gorm:"size:255" json:"owner_name"`
	Email     string `gorm:"size:255;not null;index" json:"email"`
	Phone     string `gorm:"size:50" json:"phone"`
	Website   string `gorm:"size:255" json:"website"`

	Status     string         `gorm:"size:20;default:'pending';index" json:"status"`
	DraftData  datatypes.JSON `gorm:"type:jsonb" json:"draft_data"`
	AdminNotes *string        `gorm:"type:text" json:"admin_notes"`

	// Role is written by admin promotion; classification still reads SalonName.
	Role *string `gorm:"size:20" json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
