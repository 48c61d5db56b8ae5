package models

import (
	"time"

	"gorm.io/datatypes"
)

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:255;not null" json:"name"`
	// Slug is not unique: repeated AlwaysInsert imports produce duplicate rows.
	Slug string `gorm:"size:255;index" json:"slug"`

	Address string `gorm:"size:255" json:"address"`
	CityID  *uint  `gorm:"index" json:"city_id"`
	City    *City  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"city,omitempty"`

	Phone       string   `gorm:"size:50" json:"phone"`
	Website     string   `gorm:"size:255" json:"website"`
	Email       string   `gorm:"size:255" json:"email"`
	Description string   `gorm:"type:text" json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	PriceRange  *string  `gorm:"size:20" json:"price_range"`

	SalonFlags `gorm:"embedded"`

	Rating                 float64 `gorm:"default:0" json:"rating"`
	ReviewCount            int     `gorm:"default:0" json:"review_count"`
	ViewCount              int     `gorm:"default:0" json:"view_count"`
	PhotoCount             int     `gorm:"default:0" json:"photo_count"`
	PhotoLimit             int     `gorm:"default:5" json:"photo_limit"`
	ContactFormSubmissions int     `gorm:"default:0" json:"contact_form_submissions"`

	OpeningHours datatypes.JSON `gorm:"type:jsonb" json:"opening_hours"`

	IsPublished bool `gorm:"default:true;index" json:"is_published"`
	IsVerified  bool `gorm:"default:false" json:"is_verified"`
	IsFeatured  bool `gorm:"default:false" json:"is_featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SalonPhoto struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	SalonID uint   `gorm:"not null;index" json:"salon_id"`

	Filename         string `gorm:"size:255" json:"filename"`
	OriginalFilename string `gorm:"size:255" json:"original_filename"`
	ObjectKey        string `gorm:"size:512" json:"-"`
	URL              string `gorm:"size:1024" json:"url"`
	FileSize         int64  `json:"file_size"`
	MimeType         string `gorm:"size:50" json:"mime_type"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	Description      string `gorm:"size:255" json:"description"`
	IsPrimary        bool   `gorm:"default:false" json:"is_primary"`
	SortOrder        int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
}

type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SalonID     uint      `gorm:"not null;index" json:"salon_id"`
	AuthorName  string    `gorm:"size:100" json:"author_name"`
	Rating      int       `gorm:"not null" json:"rating"`
	Title       string    `gorm:"size:255" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactSubmission struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"not null;index" json:"salon_id"`

	VisitorName            string  `gorm:"size:255;not null" json:"visitor_name"`
	VisitorEmail           string  `gorm:"size:255;not null" json:"visitor_email"`
	VisitorPhone           *string `gorm:"size:50" json:"visitor_phone"`
	Subject                *string `gorm:"size:255" json:"subject"`
	Message                string  `gorm:"type:text;not null" json:"message"`
	ServiceInterest        *string `gorm:"size:255" json:"service_interest"`
	PreferredContactMethod string  `gorm:"size:20;default:'email'" json:"preferred_contact_method"`

	CreatedAt time.Time `json:"created_at"`
}
