package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogPost struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Slug        string                      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt     string                      `gorm:"type:text" json:"excerpt"`
	Content     string                      `gorm:"type:text" json:"content"`
	Category    string                      `gorm:"size:100;index" json:"category"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	IsPublished bool                        `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time                  `json:"published_at"`
	ReadTime    int                         `gorm:"default:1" json:"read_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceCategory struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:100;not null" json:"name"`
	Slug        string        `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Description string        `gorm:"type:text" json:"description"`
	SortOrder   int           `gorm:"default:0" json:"sort_order"`
	IsActive    bool          `gorm:"default:true" json:"is_active"`
	Services    []ServiceType `gorm:"foreignKey:CategoryID" json:"services,omitempty"`
}

type ServiceType struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	CategoryID      uint    `gorm:"not null;index" json:"category_id"`
	Name            string  `gorm:"size:100;not null" json:"name"`
	Slug            string  `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	DurationMinutes int     `json:"duration_minutes"`
	PriceLow        float64 `json:"price_low"`
	PriceHigh       float64 `json:"price_high"`
}
