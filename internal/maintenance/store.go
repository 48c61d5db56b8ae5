package maintenance

import (
	"context"

	"github.com/nailnav/nailnav/internal/models"
)

type SalonRef struct {
	ID      uint
	Name    string
	Address string
	City    string
	State   string
}

type Counts struct {
	Countries    int64
	States       int64
	Cities       int64
	Salons       int64
	Published    int64
	WithCoords   int64
	Applications int64
	Categories   int64
	ServiceTypes int64
	BlogPosts    int64
}

// Store is the storage port for the repair and seeding tools.
type Store interface {
	// -------- Salons --------
	ListSalonRefs(ctx context.Context) ([]SalonRef, error)
	DeleteSalons(ctx context.Context, ids []uint) error
	ListSalonsMissingCoords(ctx context.Context) ([]SalonRef, error)
	SetCoordinates(ctx context.Context, id uint, lat, lng float64) error
	SetReviewCount(ctx context.Context, id uint, count int) error

	// -------- Cities --------
	ListCitiesLike(ctx context.Context, pattern string) ([]models.City, error)
	FindCity(ctx context.Context, name string, stateID uint) (*models.City, error)
	RenameCity(ctx context.Context, id uint, name string) error
	// MergeCity moves every salon from one city to another and deletes the source.
	MergeCity(ctx context.Context, fromID, intoID uint) error

	// -------- Seeds --------
	EnsureCountry(ctx context.Context, c *models.Country) error
	EnsureState(ctx context.Context, s *models.State) error
	EnsureCategory(ctx context.Context, c *models.ServiceCategory) error
	EnsureServiceType(ctx context.Context, t *models.ServiceType) error

	Counts(ctx context.Context) (*Counts, error)
}
