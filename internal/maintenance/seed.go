package maintenance

import (
	"context"

	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/models"
)

var Australia = models.Country{Name: "Australia", Code: "AU"}

// AustralianStates is the canonical state list in seeding order.
var AustralianStates = []models.State{
	{Name: "New South Wales", Code: "NSW"},
	{Name: "Victoria", Code: "VIC"},
	{Name: "Queensland", Code: "QLD"},
	{Name: "Western Australia", Code: "WA"},
	{Name: "South Australia", Code: "SA"},
	{Name: "Tasmania", Code: "TAS"},
	{Name: "Northern Territory", Code: "NT"},
	{Name: "Australian Capital Territory", Code: "ACT"},
}

type SeedResult struct {
	Attempted int
	Failed    int
}

// SeedLocations makes sure Australia and its eight states exist.
func (s *Service) SeedLocations(ctx context.Context) (*SeedResult, error) {
	country := Australia
	if err := s.store.EnsureCountry(ctx, &country); err != nil {
		return nil, err
	}

	res := &SeedResult{}
	for _, st := range AustralianStates {
		st.CountryID = country.ID
		res.Attempted++
		if err := s.store.EnsureState(ctx, &st); err != nil && !dberr.IsBenign(err) {
			res.Failed++
			s.log.Warn("seed state failed", zap.String("state", st.Code), zap.Error(err))
		}
	}
	return res, nil
}

type catalogEntry struct {
	category models.ServiceCategory
	types    []models.ServiceType
}

func svc(name, slug string, minutes int, low, high float64) models.ServiceType {
	return models.ServiceType{Name: name, Slug: slug, DurationMinutes: minutes, PriceLow: low, PriceHigh: high}
}

var serviceCatalog = []catalogEntry{
	{models.ServiceCategory{Name: "Manicure", Slug: "manicure", Description: "Professional nail care and polish services for hands", SortOrder: 1}, []models.ServiceType{
		svc("Classic Manicure", "classic-manicure", 30, 20, 40),
		svc("Deluxe Manicure", "deluxe-manicure", 45, 30, 55),
		svc("Gel Manicure", "gel-manicure", 45, 35, 60),
		svc("French Manicure", "french-manicure", 45, 25, 50),
	}},
	{models.ServiceCategory{Name: "Pedicure", Slug: "pedicure", Description: "Professional nail care and polish services for feet", SortOrder: 2}, []models.ServiceType{
		svc("Classic Pedicure", "classic-pedicure", 45, 25, 45),
		svc("Deluxe Pedicure", "deluxe-pedicure", 60, 35, 60),
		svc("Spa Pedicure", "spa-pedicure", 60, 45, 75),
	}},
	{models.ServiceCategory{Name: "Acrylic Nails", Slug: "acrylic-nails", Description: "Artificial nail extensions using acrylic powder and liquid", SortOrder: 3}, []models.ServiceType{
		svc("Acrylic Full Set", "acrylic-full-set", 60, 35, 70),
		svc("Acrylic Fill", "acrylic-fill", 45, 25, 50),
	}},
	{models.ServiceCategory{Name: "Gel Extensions", Slug: "gel-extensions", Description: "Nail extensions using gel-based products", SortOrder: 4}, []models.ServiceType{
		svc("Gel Extension Full Set", "gel-extension-full-set", 60, 40, 75),
		svc("Gel Extension Fill", "gel-extension-fill", 45, 30, 55),
	}},
	{models.ServiceCategory{Name: "Dip Powder Nails", Slug: "dip-powder-nails", Description: "Long-lasting nail treatment using colored powder", SortOrder: 5}, []models.ServiceType{
		svc("Dip Powder Full Set", "dip-powder-full-set", 60, 35, 65),
		svc("Dip Powder Fill", "dip-powder-fill", 45, 25, 50),
	}},
	{models.ServiceCategory{Name: "Builder Gel", Slug: "builder-gel", Description: "Strengthening gel overlay for natural or extended nails", SortOrder: 6}, nil},
	{models.ServiceCategory{Name: "Gel X", Slug: "gel-x", Description: "Pre-formed soft gel nail extensions", SortOrder: 7}, nil},
	{models.ServiceCategory{Name: "Nail Maintenance", Slug: "nail-maintenance", Description: "Repair and removal services", SortOrder: 8}, []models.ServiceType{
		svc("Nail Repair", "nail-repair", 20, 5, 15),
		svc("Nail Removal", "nail-removal", 20, 10, 25),
	}},
	{models.ServiceCategory{Name: "Nail Art & Finish", Slug: "nail-art-finish", Description: "Decorative designs and finishing touches", SortOrder: 9}, nil},
	{models.ServiceCategory{Name: "Hand & Foot Treatments", Slug: "hand-foot-treatments", Description: "Spa treatments for hands and feet", SortOrder: 10}, nil},
	{models.ServiceCategory{Name: "Massage", Slug: "massage", Description: "Relaxing massage services", SortOrder: 11}, nil},
	{models.ServiceCategory{Name: "Facials", Slug: "facials", Description: "Professional facial treatments", SortOrder: 12}, nil},
	{models.ServiceCategory{Name: "Eyelash Extensions", Slug: "eyelash-extensions", Description: "Individual eyelash extension services", SortOrder: 13}, []models.ServiceType{
		svc("Classic Lash Extensions", "classic-lash-extensions", 90, 80, 150),
		svc("Volume Lash Extensions", "volume-lash-extensions", 120, 120, 220),
	}},
	{models.ServiceCategory{Name: "Lash Treatments", Slug: "lash-treatments", Description: "Eyelash enhancement treatments", SortOrder: 14}, nil},
	{models.ServiceCategory{Name: "Brow Treatments", Slug: "brow-treatments", Description: "Eyebrow shaping and enhancement", SortOrder: 15}, nil},
	{models.ServiceCategory{Name: "Waxing", Slug: "waxing", Description: "Hair removal services using wax", SortOrder: 16}, []models.ServiceType{
		svc("Eyebrow Wax", "eyebrow-wax", 15, 8, 20),
		svc("Brazilian Wax", "brazilian-wax", 45, 45, 85),
	}},
	{models.ServiceCategory{Name: "Add-Ons & Extras", Slug: "add-ons-extras", Description: "Additional services and upgrades", SortOrder: 17}, nil},
	{models.ServiceCategory{Name: "Hair Services", Slug: "hair-services", Description: "Professional hair cutting and styling", SortOrder: 18}, nil},
}

// SeedServices upserts the service catalog. Existing rows are left as they are.
func (s *Service) SeedServices(ctx context.Context) (*SeedResult, error) {
	res := &SeedResult{}
	for _, entry := range serviceCatalog {
		cat := entry.category
		cat.IsActive = true
		res.Attempted++
		if err := s.store.EnsureCategory(ctx, &cat); err != nil {
			res.Failed++
			s.log.Warn("seed category failed", zap.String("slug", cat.Slug), zap.Error(err))
			continue
		}

		for _, t := range entry.types {
			t.CategoryID = cat.ID
			res.Attempted++
			if err := s.store.EnsureServiceType(ctx, &t); err != nil {
				res.Failed++
				s.log.Warn("seed service failed", zap.String("slug", t.Slug), zap.Error(err))
			}
		}
	}
	return res, nil
}

// Verify reports row counts and logs the anomalies an operator cares about.
func (s *Service) Verify(ctx context.Context) (*Counts, error) {
	c, err := s.store.Counts(ctx)
	if err != nil {
		return nil, err
	}

	if c.States < int64(len(AustralianStates)) {
		s.log.Warn("states missing", zap.Int64("have", c.States), zap.Int("want", len(AustralianStates)))
	}
	if c.Salons > 0 && c.WithCoords < c.Salons {
		s.log.Warn("salons without coordinates", zap.Int64("count", c.Salons-c.WithCoords))
	}
	return c, nil
}
