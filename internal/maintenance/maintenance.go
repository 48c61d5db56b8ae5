package maintenance

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/importer"
)

const (
	UnnamedSalon    = "Unnamed Salon"
	deleteBatchSize = 10
)

type Service struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// ===============================
// Clean salons
// ===============================

type CleanResult struct {
	Scanned int
	Bad     int
	Deleted int
}

// CleanSalons deletes salons with an empty or placeholder name in batches.
// A failed batch is logged and the rest continue.
func (s *Service) CleanSalons(ctx context.Context) (*CleanResult, error) {
	refs, err := s.store.ListSalonRefs(ctx)
	if err != nil {
		return nil, err
	}

	var bad []uint
	for _, r := range refs {
		if isUnnamed(r.Name) {
			bad = append(bad, r.ID)
		}
	}

	res := &CleanResult{Scanned: len(refs), Bad: len(bad)}
	for i := 0; i < len(bad); i += deleteBatchSize {
		end := min(i+deleteBatchSize, len(bad))
		batch := bad[i:end]

		if err := s.store.DeleteSalons(ctx, batch); err != nil {
			s.log.Warn("delete batch failed",
				zap.Int("batch", i/deleteBatchSize+1),
				zap.Error(err),
			)
			continue
		}
		res.Deleted += len(batch)
		s.log.Info("deleted batch",
			zap.Int("batch", i/deleteBatchSize+1),
			zap.Int("size", len(batch)),
		)
	}
	return res, nil
}

func isUnnamed(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || name == UnnamedSalon
}

// ===============================
// Fix cities
// ===============================

type FixCitiesResult struct {
	Found   int
	Renamed int
	Merged  int
	Failed  int
}

// FixCities repairs city names carrying a stray "=", such as "Y = Darwin" or
// "Darwin =". When the clean name already exists in the same state the salons
// are moved onto it.
func (s *Service) FixCities(ctx context.Context) (*FixCitiesResult, error) {
	bad, err := s.store.ListCitiesLike(ctx, "%=%")
	if err != nil {
		return nil, err
	}

	res := &FixCitiesResult{Found: len(bad)}
	for _, c := range bad {
		clean := importer.CleanCityName(c.Name)
		if clean == "" || clean == c.Name {
			continue
		}

		existing, err := s.store.FindCity(ctx, clean, c.StateID)
		switch {
		case err == nil:
			err = s.store.MergeCity(ctx, c.ID, existing.ID)
			if err == nil {
				res.Merged++
			}
		case dberr.IsNotFound(err):
			err = s.store.RenameCity(ctx, c.ID, clean)
			if err == nil {
				res.Renamed++
			}
		}
		if err != nil {
			res.Failed++
			s.log.Warn("fix city failed",
				zap.String("city", c.Name),
				zap.Uint("state_id", c.StateID),
				zap.Error(err),
			)
		}
	}
	return res, nil
}

// ===============================
// Review counts
// ===============================

type ReviewCountResult struct {
	Updated int
	Skipped int
}

// ReviewCountsFromSheet reads name -> reviews from spreadsheet rows. Names
// are lowercased and trimmed; a blank count is zero.
func ReviewCountsFromSheet(rows []importer.SheetRow) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		name := strings.ToLower(strings.TrimSpace(r.Lookup("name")))
		if name == "" {
			continue
		}
		out[name] = r.Int("reviews", "review_count")
	}
	return out
}

// UpdateReviewCounts matches salons by case-insensitive name. Unmatched
// sheet rows and failed updates count as skipped.
func (s *Service) UpdateReviewCounts(ctx context.Context, counts map[string]int) (*ReviewCountResult, error) {
	refs, err := s.store.ListSalonRefs(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]uint, len(refs))
	for _, r := range refs {
		byName[strings.ToLower(strings.TrimSpace(r.Name))] = r.ID
	}

	res := &ReviewCountResult{}
	for name, n := range counts {
		id, ok := byName[name]
		if !ok {
			res.Skipped++
			continue
		}
		if err := s.store.SetReviewCount(ctx, id, n); err != nil {
			s.log.Warn("review count update failed", zap.String("salon", name), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Updated++
		if res.Updated%25 == 0 {
			s.log.Info("review counts progress", zap.Int("updated", res.Updated))
		}
	}
	return res, nil
}
