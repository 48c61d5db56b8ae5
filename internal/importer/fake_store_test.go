package importer

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nailnav/nailnav/internal/models"
)

type fakeStore struct {
	states     []models.State
	cities     []models.City
	salons     []models.Salon
	findCalls  int
	failSalon  map[string]error
	recounts   int
	recountErr error
}

func australianStates() []models.State {
	names := []struct{ name, code string }{
		{"New South Wales", "NSW"},
		{"Victoria", "VIC"},
		{"Queensland", "QLD"},
		{"Western Australia", "WA"},
		{"South Australia", "SA"},
		{"Tasmania", "TAS"},
		{"Northern Territory", "NT"},
		{"Australian Capital Territory", "ACT"},
	}
	out := make([]models.State, len(names))
	for i, n := range names {
		out[i] = models.State{ID: uint(i + 1), Name: n.name, Code: n.code, CountryID: 1}
	}
	return out
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: australianStates(), failSalon: map[string]error{}}
}

func (s *fakeStore) ListStates(context.Context) ([]models.State, error) {
	return s.states, nil
}

func (s *fakeStore) FindCity(_ context.Context, name string, stateID uint) (*models.City, error) {
	s.findCalls++
	for i := range s.cities {
		if s.cities[i].Name == name && s.cities[i].StateID == stateID {
			c := s.cities[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) CreateCity(_ context.Context, c *models.City) error {
	for _, existing := range s.cities {
		if existing.Name == c.Name && existing.StateID == c.StateID {
			return errors.New(`duplicate key value violates unique constraint "idx_cities_name_state"`)
		}
	}
	c.ID = uint(len(s.cities) + 1)
	s.cities = append(s.cities, *c)
	return nil
}

func (s *fakeStore) FindSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	for i := range s.salons {
		if s.salons[i].Slug == slug {
			v := s.salons[i]
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) CreateSalon(_ context.Context, v *models.Salon) error {
	if err := s.failSalon[v.Name]; err != nil {
		return err
	}
	v.ID = uint(len(s.salons) + 1)
	s.salons = append(s.salons, *v)
	return nil
}

func (s *fakeStore) OverwriteSalon(_ context.Context, id uint, v *models.Salon) error {
	for i := range s.salons {
		if s.salons[i].ID == id {
			v.ID = id
			s.salons[i] = *v
			return nil
		}
	}
	return fmt.Errorf("salon %d not found", id)
}

func (s *fakeStore) RecountCities(context.Context) error {
	s.recounts++
	return s.recountErr
}
