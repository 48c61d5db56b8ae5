package salon

import (
	"strings"

	"github.com/nailnav/nailnav/internal/models"
)

// ===============================
// Flag → label tables
// ===============================

type Service struct {
	Flag     string
	Name     string
	Category string
}

var Services = []Service{
	{"manicure", "Manicure", "Manicures"},
	{"pedicure", "Pedicure", "Pedicures"},
	{"gel_nails", "Gel Nails", "Manicures"},
	{"acrylic_nails", "Acrylic Nails", "Extensions"},
	{"nail_art", "Nail Art", "Nail Art"},
	{"dip_powder", "Dip Powder", "Manicures"},
	{"shellac", "Shellac", "Manicures"},
	{"nail_extensions", "Nail Extensions", "Extensions"},
	{"nail_repair", "Nail Repair", "Treatments"},
	{"cuticle_care", "Cuticle Care", "Treatments"},
}

type label struct {
	Flag string
	Name string
}

// friendly_service has no label.
var specialties = []label{
	{"master_artist", "Master Nail Artist"},
	{"certified_technicians", "Certified Technicians"},
	{"experienced_staff", "Experienced Team"},
	{"luxury_experience", "Luxury Experience"},
	{"relaxing_atmosphere", "Relaxing Atmosphere"},
	{"modern_facilities", "Modern Facilities"},
	{"clean_hygienic", "Clean & Hygienic"},
	{"quick_service", "Quick Service"},
	{"premium_products", "Premium Products"},
}

var amenities = []label{
	{"parking", "Parking"},
	{"wheelchair_accessible", "Wheelchair Accessible"},
	{"kid_friendly", "Kid Friendly"},
	{"accepts_walk_ins", "Walk-ins Welcome"},
	{"online_booking", "Online Booking"},
	{"credit_cards_accepted", "Cards Accepted"},
	{"gift_cards_available", "Gift Cards"},
	{"free_wifi", "Free Wi-Fi"},
	{"complimentary_drink", "Complimentary Drink"},
	{"heated_massage_chairs", "Heated Massage Chairs"},
	{"pet_friendly", "Pet Friendly"},
	{"lgbtqi_friendly", "LGBTQI+ Friendly"},
}

func ServicesOffered(f *models.SalonFlags) []string {
	out := []string{}
	for _, s := range Services {
		if f.Get(s.Flag) {
			out = append(out, s.Name)
		}
	}
	return out
}

func Specialties(f *models.SalonFlags) []string {
	return labels(f, specialties)
}

func Amenities(f *models.SalonFlags) []string {
	return labels(f, amenities)
}

func labels(f *models.SalonFlags, table []label) []string {
	out := []string{}
	for _, l := range table {
		if f.Get(l.Flag) {
			out = append(out, l.Name)
		}
	}
	return out
}

type ServiceItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

const (
	DefaultServicePrice    = 45
	DefaultServiceDuration = 60
)

// ServiceItems lists the offered services with placeholder price and duration.
func ServiceItems(f *models.SalonFlags) []ServiceItem {
	out := []ServiceItem{}
	for _, s := range Services {
		if !f.Get(s.Flag) {
			continue
		}
		out = append(out, ServiceItem{
			ID:          strings.ReplaceAll(strings.ToLower(s.Name), " ", "-"),
			Name:        s.Name,
			Category:    s.Category,
			Price:       DefaultServicePrice,
			Duration:    DefaultServiceDuration,
			Description: "Professional " + strings.ToLower(s.Name) + " service",
			Available:   true,
		})
	}
	return out
}
