package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/models"
)

type CityStore interface {
	FindCity(ctx context.Context, name string, stateID uint) (*models.City, error)
	CreateCity(ctx context.Context, c *models.City) error
}

// CityResolver memoizes (name, state) → city id for one run.
type CityResolver struct {
	store   CityStore
	cache   map[string]uint
	created int
}

func NewCityResolver(store CityStore) *CityResolver {
	return &CityResolver{store: store, cache: map[string]uint{}}
}

func cityKey(name string, stateID uint) string {
	return fmt.Sprintf("%s_%d", name, stateID)
}

func (r *CityResolver) Resolve(
	ctx context.Context,
	name string,
	stateID uint,
	lat, lng *float64,
) (uint, error) {

	name = strings.TrimSpace(name)
	key := cityKey(name, stateID)
	if id, ok := r.cache[key]; ok {
		return id, nil
	}

	city, err := r.store.FindCity(ctx, name, stateID)
	switch {
	case err == nil:
	case dberr.IsNotFound(err):
		city = &models.City{Name: name, StateID: stateID, Latitude: lat, Longitude: lng}
		if err := r.store.CreateCity(ctx, city); err != nil {
			if !dberr.IsDuplicate(err) {
				return 0, fmt.Errorf("create city %q: %w", name, err)
			}
			// created concurrently by another run
			if city, err = r.store.FindCity(ctx, name, stateID); err != nil {
				return 0, fmt.Errorf("find city %q: %w", name, err)
			}
		} else {
			r.created++
		}
	default:
		return 0, fmt.Errorf("find city %q: %w", name, err)
	}

	r.cache[key] = city.ID
	return city.ID, nil
}

func (r *CityResolver) Created() int {
	return r.created
}
