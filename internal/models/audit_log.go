package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActorID *uuid.UUID `gorm:"type:uuid" json:"actor_id"`
	Action  string     `gorm:"size:50;not null;index" json:"action"`

	Entity   string         `gorm:"size:50;index" json:"entity"`
	EntityID string         `gorm:"size:64" json:"entity_id"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
