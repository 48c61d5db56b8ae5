package models

import "time"

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Code string `gorm:"size:3;uniqueIndex;not null" json:"code"`
}

type State struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:100;not null;uniqueIndex:idx_states_name_country" json:"name"`
	Code      string  `gorm:"size:10;not null" json:"code"`
	CountryID uint    `gorm:"not null;uniqueIndex:idx_states_name_country" json:"country_id"`
	Country   Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

type City struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Name      string   `gorm:"size:100;not null;uniqueIndex:idx_cities_name_state" json:"name"`
	StateID   uint     `gorm:"not null;uniqueIndex:idx_cities_name_state" json:"state_id"`
	State     State    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"state"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	SalonCount int `gorm:"default:0" json:"salon_count"`

	CreatedAt time.Time `json:"created_at"`
}
