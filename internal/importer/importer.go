package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/models"
)

var ErrMissingName = errors.New("missing salon name")

const unknownCity = "Unknown"

var rowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "nailnav_import_rows_total",
	Help: "Salon import rows by outcome.",
}, []string{"outcome"})

// Store is what a run needs from the database.
type Store interface {
	CityStore

	ListStates(ctx context.Context) ([]models.State, error)
	FindSalonBySlug(ctx context.Context, slug string) (*models.Salon, error)
	CreateSalon(ctx context.Context, s *models.Salon) error
	// OverwriteSalon replaces every column of the row with id using s.
	OverwriteSalon(ctx context.Context, id uint, s *models.Salon) error
	RecountCities(ctx context.Context) error
}

type Options struct {
	Policy   ConflictPolicy
	Throttle Throttle
	Flags    FlagAssigner
	// Recount refreshes cities.salon_count after the run.
	Recount bool
}

type Outcome string

const (
	OutcomeInserted Outcome = "inserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

type RowError struct {
	Row  int
	Name string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

type Result struct {
	Total         int
	Inserted      int
	Updated       int
	Skipped       int
	Failed        []RowError
	CitiesCreated int
	StateDefaults int
}

func (r *Result) Succeeded() int {
	return r.Inserted + r.Updated + r.Skipped
}

type Importer struct {
	store Store
	log   *zap.Logger
	opts  Options
}

func New(store Store, log *zap.Logger, opts Options) *Importer {
	if opts.Throttle == nil {
		opts.Throttle = NoThrottle
	}
	if opts.Flags == nil {
		opts.Flags = SheetFlags()
	}
	return &Importer{store: store, log: log, opts: opts}
}

// Run imports recs in order. A failing row is recorded and the run moves on;
// rows already written are never rolled back. The returned error is only set
// when the run cannot start or ctx ends.
func (im *Importer) Run(ctx context.Context, recs []Record) (*Result, error) {
	states, err := im.store.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load states: %w", err)
	}
	resolver, err := NewStateResolver(states)
	if err != nil {
		return nil, err
	}
	cities := NewCityResolver(im.store)

	res := &Result{Total: len(recs)}
	im.log.Info("import started",
		zap.Int("rows", len(recs)),
		zap.Stringer("policy", im.opts.Policy),
	)

	for i := range recs {
		rec := recs[i]
		if rec.Row == 0 {
			rec.Row = i + 1
		}

		outcome, err := im.importOne(ctx, resolver, cities, &rec, res)
		if err != nil {
			res.Failed = append(res.Failed, RowError{Row: rec.Row, Name: rec.Name, Err: err})
			rowsTotal.WithLabelValues(string(OutcomeFailed)).Inc()
			im.log.Warn("row failed",
				zap.Int("row", rec.Row),
				zap.String("name", rec.Name),
				zap.Error(err),
			)
		} else {
			rowsTotal.WithLabelValues(string(outcome)).Inc()
			switch outcome {
			case OutcomeInserted:
				res.Inserted++
			case OutcomeUpdated:
				res.Updated++
			case OutcomeSkipped:
				res.Skipped++
			}
			im.log.Debug("row imported",
				zap.Int("row", rec.Row),
				zap.String("name", rec.Name),
				zap.String("outcome", string(outcome)),
			)
		}

		if err := im.opts.Throttle.Wait(ctx, i+1); err != nil {
			return res, err
		}
	}

	res.CitiesCreated = cities.Created()

	if im.opts.Recount {
		if err := im.store.RecountCities(ctx); err != nil {
			im.log.Warn("salon count refresh failed", zap.Error(err))
		}
	}

	im.log.Info("import finished",
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", len(res.Failed)),
		zap.Int("cities_created", res.CitiesCreated),
	)
	return res, nil
}

func (im *Importer) importOne(
	ctx context.Context,
	states *StateResolver,
	cities *CityResolver,
	rec *Record,
	res *Result,
) (Outcome, error) {

	rec.Name = strings.TrimSpace(rec.Name)
	if rec.Name == "" {
		return "", ErrMissingName
	}

	stateID, match := states.Resolve(rec.State)
	if match == MatchDefault {
		res.StateDefaults++
		im.log.Warn("unknown state, using NSW",
			zap.Int("row", rec.Row),
			zap.String("state", rec.State),
		)
	}

	cityName := strings.TrimSpace(rec.City)
	if cityName == "" {
		cityName = unknownCity
	}
	cityID, err := cities.Resolve(ctx, cityName, stateID, rec.Latitude, rec.Longitude)
	if err != nil {
		return "", err
	}

	s, err := im.buildSalon(rec, cityID)
	if err != nil {
		return "", err
	}

	if im.opts.Policy == AlwaysInsert {
		if err := im.store.CreateSalon(ctx, s); err != nil {
			return "", err
		}
		return OutcomeInserted, nil
	}

	existing, err := im.store.FindSalonBySlug(ctx, s.Slug)
	switch {
	case err == nil:
		if im.opts.Policy == Skip {
			return OutcomeSkipped, nil
		}
		if err := im.store.OverwriteSalon(ctx, existing.ID, s); err != nil {
			return "", err
		}
		return OutcomeUpdated, nil
	case dberr.IsNotFound(err):
		if err := im.store.CreateSalon(ctx, s); err != nil {
			return "", err
		}
		return OutcomeInserted, nil
	default:
		return "", err
	}
}

func (im *Importer) buildSalon(rec *Record, cityID uint) (*models.Salon, error) {
	s := &models.Salon{
		Name:        rec.Name,
		Slug:        rec.slug(),
		Address:     rec.Address,
		CityID:      &cityID,
		Phone:       rec.Phone,
		Website:     rec.Website,
		Email:       rec.Email,
		Description: rec.Description,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		PriceRange:  rec.PriceRange,
		IsPublished: true,
	}
	if rec.Rating != nil {
		s.Rating = *rec.Rating
	}
	if rec.ReviewCount != nil {
		s.ReviewCount = *rec.ReviewCount
	}
	s.SalonFlags.Apply(im.opts.Flags(rec))

	if rec.OpeningHours != nil {
		b, err := json.Marshal(rec.OpeningHours)
		if err != nil {
			return nil, err
		}
		s.OpeningHours = datatypes.JSON(b)
	}
	return s, nil
}
