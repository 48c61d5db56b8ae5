package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nailnav/nailnav/internal/maintenance"
	"github.com/nailnav/nailnav/internal/models"
)

type MaintenanceGormRepository struct {
	db *gorm.DB
}

func NewMaintenanceGormRepository(db *gorm.DB) *MaintenanceGormRepository {
	return &MaintenanceGormRepository{db: db}
}

var _ maintenance.Store = (*MaintenanceGormRepository)(nil)

const salonRefSelect = `
    salons.id, salons.name, salons.address,
    cities.name AS city, states.code AS state`

func (r *MaintenanceGormRepository) salonRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("salons").
		Select(salonRefSelect).
		Joins("LEFT JOIN cities ON cities.id = salons.city_id").
		Joins("LEFT JOIN states ON states.id = cities.state_id").
		Order("salons.id ASC")
}

// --------------------------------------------------
// Salons
// --------------------------------------------------

func (r *MaintenanceGormRepository) ListSalonRefs(ctx context.Context) ([]maintenance.SalonRef, error) {
	var out []maintenance.SalonRef
	if err := r.salonRefs(ctx).Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaintenanceGormRepository) DeleteSalons(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Salon{}).Error
}

func (r *MaintenanceGormRepository) ListSalonsMissingCoords(ctx context.Context) ([]maintenance.SalonRef, error) {
	var out []maintenance.SalonRef
	err := r.salonRefs(ctx).
		Where("salons.is_published = ?", true).
		Where("salons.latitude IS NULL OR salons.longitude IS NULL").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaintenanceGormRepository) SetCoordinates(ctx context.Context, id uint, lat, lng float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", id).
		Updates(map[string]any{"latitude": lat, "longitude": lng}).Error
}

func (r *MaintenanceGormRepository) SetReviewCount(ctx context.Context, id uint, count int) error {
	return r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", id).
		Update("review_count", count).Error
}

// --------------------------------------------------
// Cities
// --------------------------------------------------

func (r *MaintenanceGormRepository) ListCitiesLike(ctx context.Context, pattern string) ([]models.City, error) {
	var out []models.City
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", pattern).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaintenanceGormRepository) FindCity(ctx context.Context, name string, stateID uint) (*models.City, error) {
	var c models.City
	if err := r.db.WithContext(ctx).
		Where("name = ? AND state_id = ?", name, stateID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MaintenanceGormRepository) RenameCity(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&models.City{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *MaintenanceGormRepository) MergeCity(ctx context.Context, fromID, intoID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Salon{}).
			Where("city_id = ?", fromID).
			Update("city_id", intoID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.City{}, fromID).Error
	})
}

// --------------------------------------------------
// Seeds
// --------------------------------------------------

func (r *MaintenanceGormRepository) EnsureCountry(ctx context.Context, c *models.Country) error {
	return r.db.WithContext(ctx).
		Where(models.Country{Code: c.Code}).
		Attrs(models.Country{Name: c.Name}).
		FirstOrCreate(c).Error
}

func (r *MaintenanceGormRepository) EnsureState(ctx context.Context, s *models.State) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "country_id"}},
			DoNothing: true,
		}).
		Create(s).Error
}

func (r *MaintenanceGormRepository) EnsureCategory(ctx context.Context, c *models.ServiceCategory) error {
	return r.db.WithContext(ctx).
		Where(models.ServiceCategory{Slug: c.Slug}).
		Attrs(*c).
		FirstOrCreate(c).Error
}

func (r *MaintenanceGormRepository) EnsureServiceType(ctx context.Context, t *models.ServiceType) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(t).Error
}

func (r *MaintenanceGormRepository) Counts(ctx context.Context) (*maintenance.Counts, error) {
	c := &maintenance.Counts{}
	db := r.db.WithContext(ctx)

	steps := []struct {
		dst   *int64
		model any
		where string
	}{
		{&c.Countries, &models.Country{}, ""},
		{&c.States, &models.State{}, ""},
		{&c.Cities, &models.City{}, ""},
		{&c.Salons, &models.Salon{}, ""},
		{&c.Published, &models.Salon{}, "is_published = true"},
		{&c.WithCoords, &models.Salon{}, "latitude IS NOT NULL AND longitude IS NOT NULL"},
		{&c.Applications, &models.VendorApplication{}, ""},
		{&c.Categories, &models.ServiceCategory{}, ""},
		{&c.ServiceTypes, &models.ServiceType{}, ""},
		{&c.BlogPosts, &models.BlogPost{}, ""},
	}
	for _, s := range steps {
		q := db.Model(s.model)
		if s.where != "" {
			q = q.Where(s.where)
		}
		if err := q.Count(s.dst).Error; err != nil {
			return nil, err
		}
	}
	return c, nil
}
