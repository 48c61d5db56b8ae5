package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/importer"
	"github.com/nailnav/nailnav/internal/infra/geocode"
	infraRepo "github.com/nailnav/nailnav/internal/infra/repository"
	"github.com/nailnav/nailnav/internal/jobs"
	"github.com/nailnav/nailnav/internal/maintenance"
)

const defaultReviewWorkbook = "Nail_Salons_Aus_250.xlsx"

func (e *env) maintenance() (*maintenance.Service, error) {
	db, err := e.gorm()
	if err != nil {
		return nil, err
	}
	return maintenance.New(infraRepo.NewMaintenanceGormRepository(db), e.log), nil
}

func seedLocationsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-locations",
		Short: "Ensure Australia and its states exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			res, err := svc.SeedLocations(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("locations seeded", zap.Int("attempted", res.Attempted), zap.Int("failed", res.Failed))
			return nil
		},
	}
}

func seedServicesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-services",
		Short: "Ensure the service category catalogue exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			res, err := svc.SeedServices(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("services seeded", zap.Int("attempted", res.Attempted), zap.Int("failed", res.Failed))
			return nil
		},
	}
}

func cleanSalonsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clean-salons",
		Short: "Delete salons with blank or placeholder names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			res, err := svc.CleanSalons(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("salons cleaned",
				zap.Int("scanned", res.Scanned),
				zap.Int("bad", res.Bad),
				zap.Int("deleted", res.Deleted),
			)
			return nil
		},
	}
}

func fixCitiesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "fix-cities",
		Short: `Repair city names stored as "Y = Name"`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			res, err := svc.FixCities(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("cities fixed",
				zap.Int("found", res.Found),
				zap.Int("renamed", res.Renamed),
				zap.Int("merged", res.Merged),
				zap.Int("failed", res.Failed),
			)
			return nil
		},
	}
}

func geocodeCmd(e *env) *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:   "geocode",
		Short: "Fill missing salon coordinates from the geocoder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			g := geocode.NewNominatim(e.cfg.GeocoderURL, e.cfg.GeocoderUserAgent)

			res, err := svc.Geocode(cmd.Context(), g, country)
			if err != nil {
				return err
			}
			e.log.Info("geocoding finished",
				zap.Int("pending", res.Pending),
				zap.Int("geocoded", res.Geocoded),
				zap.Int("failed", res.Failed),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&country, "country", "Australia", "country appended to every query")
	return cmd
}

func updateReviewCountsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "update-review-counts [workbook.xlsx]",
		Short: "Copy review counts from a workbook onto salons matched by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultReviewWorkbook
			if len(args) == 1 {
				path = args[0]
			}

			rows, err := importer.ReadWorkbook(path)
			if err != nil {
				return err
			}

			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			res, err := svc.UpdateReviewCounts(cmd.Context(), maintenance.ReviewCountsFromSheet(rows))
			if err != nil {
				return err
			}
			e.log.Info("review counts updated", zap.Int("updated", res.Updated), zap.Int("skipped", res.Skipped))
			return nil
		},
	}
}

func recountCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recount",
		Short: "Recompute cities.salon_count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.gorm()
			if err != nil {
				return err
			}
			return jobs.Recount(cmd.Context(), infraRepo.NewImportGormRepository(db), e.log)
		},
	}
}

func verifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Print row counts and flag missing reference data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.maintenance()
			if err != nil {
				return err
			}
			c, err := svc.Verify(cmd.Context())
			if err != nil {
				return err
			}
			e.log.Info("database contents",
				zap.Int64("countries", c.Countries),
				zap.Int64("states", c.States),
				zap.Int64("cities", c.Cities),
				zap.Int64("salons", c.Salons),
				zap.Int64("published", c.Published),
				zap.Int64("with_coordinates", c.WithCoords),
				zap.Int64("applications", c.Applications),
				zap.Int64("categories", c.Categories),
				zap.Int64("service_types", c.ServiceTypes),
				zap.Int64("blog_posts", c.BlogPosts),
			)
			return nil
		},
	}
}
