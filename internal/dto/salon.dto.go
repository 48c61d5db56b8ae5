package dto

import (
	"time"

	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/models"
	"github.com/nailnav/nailnav/internal/timezone"
)

const (
	DefaultCurrency   = "AUD"
	DefaultCountry    = "Australia"
	DefaultState      = "VIC"
	DefaultPriceRange = "mid-range"
	DefaultPriceFrom  = 35
	UnknownCity       = "Unknown"
)

var defaultLanguages = []string{"English"}

type CityRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// SalonCard is the list/featured representation.
type SalonCard struct {
	models.Salon

	City            string   `json:"city"`
	State           string   `json:"state"`
	Country         string   `json:"country"`
	Currency        string   `json:"currency"`
	ServicesOffered []string `json:"services_offered"`
	Specialties     []string `json:"specialties"`
	LanguagesSpoken []string `json:"languages_spoken"`
	PriceRange      string   `json:"price_range"`
	PriceFrom       int      `json:"price_from"`
	AverageRating   float64  `json:"average_rating"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
}

type SalonDetail struct {
	SalonCard

	Services     []salon.ServiceItem `json:"services"`
	Amenities    []string            `json:"amenities"`
	OpeningHours salon.OpeningHours  `json:"opening_hours"`
	OpenNow      bool                `json:"open_now"`
	Timezone     string              `json:"timezone"`
	Reviews      []models.Review     `json:"reviews"`
}

func cityState(s *models.Salon) (string, string) {
	if s.City == nil {
		return UnknownCity, DefaultState
	}
	state := s.City.State.Code
	if state == "" {
		state = DefaultState
	}
	return s.City.Name, state
}

func NewSalonCard(s *models.Salon) SalonCard {
	city, state := cityState(s)

	priceRange := DefaultPriceRange
	if s.PriceRange != nil && *s.PriceRange != "" {
		priceRange = *s.PriceRange
	}

	card := SalonCard{
		Salon:           *s,
		City:            city,
		State:           state,
		Country:         DefaultCountry,
		Currency:        DefaultCurrency,
		ServicesOffered: salon.ServicesOffered(&s.SalonFlags),
		Specialties:     salon.Specialties(&s.SalonFlags),
		LanguagesSpoken: defaultLanguages,
		PriceRange:      priceRange,
		PriceFrom:       DefaultPriceFrom,
		AverageRating:   s.Rating,
	}
	// the relation is flattened into city/state above
	card.Salon.City = nil
	return card
}

func NewSalonCards(list []models.Salon) []SalonCard {
	out := make([]SalonCard, len(list))
	for i := range list {
		out[i] = NewSalonCard(&list[i])
	}
	return out
}

func NewNearbyCards(list []salon.Nearby) []SalonCard {
	out := make([]SalonCard, len(list))
	for i := range list {
		out[i] = NewSalonCard(&list[i].Salon)
		d := list[i].DistanceKm
		out[i].DistanceKm = &d
	}
	return out
}

// NewSalonDetail builds the single-salon view; open_now is evaluated in the
// salon's state timezone.
func NewSalonDetail(s *models.Salon, now time.Time) SalonDetail {
	card := NewSalonCard(s)

	hours := salon.ParseOpeningHours(s.OpeningHours)
	if len(hours) == 0 {
		hours = salon.DefaultOpeningHours()
	}

	tz := timezone.ForState(card.State)
	return SalonDetail{
		SalonCard:    card,
		Services:     salon.ServiceItems(&s.SalonFlags),
		Amenities:    salon.Amenities(&s.SalonFlags),
		OpeningHours: hours,
		OpenNow:      hours.OpenAt(now.In(timezone.Location(tz))),
		Timezone:     tz,
		Reviews:      []models.Review{},
	}
}
