package importer

import (
	"github.com/nailnav/nailnav/internal/domain/salon"
)

// Record is one salon as read from a sheet or a built-in list.
type Record struct {
	Row int

	Name        string
	Slug        string
	Address     string
	City        string
	State       string
	Phone       string
	Website     string
	Email       string
	Description string

	Latitude  *float64
	Longitude *float64

	Rating      *float64
	ReviewCount *int
	PriceRange  *string

	// Flags holds values read from the source; the run's FlagAssigner decides
	// what is finally written.
	Flags        map[string]bool
	OpeningHours salon.OpeningHours
}

func (r Record) slug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return salon.Slug(r.Name, r.City)
}
