package salon

import (
	"context"

	"github.com/nailnav/nailnav/internal/models"
)

// ListFilter.Services are flag column names that must all be true.
type ListFilter struct {
	Query     string
	City      string
	StateCode string
	Services  []string
	Verified  bool
	WalkIns   bool
	Parking   bool
	Limit     int
	Offset    int
}

type LocationQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

type Nearby struct {
	models.Salon
	DistanceKm float64 `json:"distance_km"`
}

type CityFilter struct {
	Search    string
	StateCode string
	Limit     int
}

// Find and Get methods return gorm.ErrRecordNotFound when nothing matches.
type Repository interface {
	// -------- Salons --------
	ListPublished(
		ctx context.Context,
		f ListFilter,
	) ([]models.Salon, error)

	Featured(
		ctx context.Context,
		limit int,
	) ([]models.Salon, error)

	GetPublishedBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	GetPublishedByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	IncrementViews(
		ctx context.Context,
		id uint,
	) error

	SearchByLocation(
		ctx context.Context,
		q LocationQuery,
	) ([]Nearby, error)

	// -------- Cities --------
	ListCities(
		ctx context.Context,
		f CityFilter,
	) ([]models.City, error)

	// -------- Contact --------
	// CreateContact inserts the submission and bumps the salon counter atomically.
	CreateContact(
		ctx context.Context,
		sub *models.ContactSubmission,
	) error

	// -------- Photos --------
	ListPhotos(
		ctx context.Context,
		salonID uint,
	) ([]models.SalonPhoto, error)

	GetPhoto(
		ctx context.Context,
		id string,
	) (*models.SalonPhoto, error)

	CountPhotos(
		ctx context.Context,
		salonID uint,
	) (int64, error)

	// CreatePhoto inserts the row and updates salons.photo_count.
	CreatePhoto(
		ctx context.Context,
		p *models.SalonPhoto,
	) error

	DeletePhoto(
		ctx context.Context,
		p *models.SalonPhoto,
	) error
}

const (
	DefaultListLimit     = 20
	MaxListLimit         = 100
	DefaultFeaturedLimit = 8
	DefaultCityLimit     = 10
)

// Normalize clamps paging and drops unknown service names.
func (f *ListFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	known := f.Services[:0]
	for _, s := range f.Services {
		if models.IsFlag(s) {
			known = append(known, s)
		}
	}
	f.Services = known
}
