package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

var _ domain.Repository = (*SalonGormRepository)(nil)

func (r *SalonGormRepository) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Preload("City.State").
		Where("salons.is_published = ?", true)
}

// --------------------------------------------------
// Salons
// --------------------------------------------------

func (r *SalonGormRepository) ListPublished(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Salon, error) {

	f.Normalize()

	q := r.published(ctx).
		Select("salons.*").
		Joins("LEFT JOIN cities ON cities.id = salons.city_id").
		Joins("LEFT JOIN states ON states.id = cities.state_id")

	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("salons.name ILIKE ? OR salons.address ILIKE ? OR cities.name ILIKE ?", like, like, like)
	}
	if f.City != "" {
		q = q.Where("cities.name ILIKE ?", strings.TrimSpace(f.City))
	}
	if f.StateCode != "" {
		q = q.Where("UPPER(states.code) = ?", strings.ToUpper(strings.TrimSpace(f.StateCode)))
	}
	for _, flag := range f.Services {
		q = q.Where(clause.Eq{Column: clause.Column{Table: "salons", Name: flag}, Value: true})
	}
	if f.Verified {
		q = q.Where("salons.is_verified = ?", true)
	}
	if f.WalkIns {
		q = q.Where("salons.accepts_walk_ins = ?", true)
	}
	if f.Parking {
		q = q.Where("salons.parking = ?", true)
	}

	var salons []models.Salon
	if err := q.
		Order("salons.name ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *SalonGormRepository) Featured(
	ctx context.Context,
	limit int,
) ([]models.Salon, error) {

	if limit <= 0 {
		limit = domain.DefaultFeaturedLimit
	}

	var salons []models.Salon
	if err := r.published(ctx).
		Order("salons.rating DESC").
		Order("salons.name ASC").
		Limit(limit).
		Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *SalonGormRepository) GetPublishedBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var s models.Salon
	if err := r.published(ctx).
		Where("salons.slug = ?", slug).
		Order("salons.id ASC").
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalonGormRepository) GetPublishedByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var s models.Salon
	if err := r.published(ctx).
		Where("salons.id = ?", id).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalonGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var s models.Salon
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalonGormRepository) IncrementViews(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

const nearbySQL = `
SELECT * FROM (
    SELECT salons.*,
        6371 * acos(LEAST(1.0,
            cos(radians(?)) * cos(radians(salons.latitude)) *
            cos(radians(salons.longitude) - radians(?)) +
            sin(radians(?)) * sin(radians(salons.latitude))
        )) AS distance_km
    FROM salons
    WHERE salons.is_published = true
      AND salons.latitude IS NOT NULL
      AND salons.longitude IS NOT NULL
) AS nearby
WHERE distance_km <= ?
ORDER BY distance_km ASC
LIMIT ?`

func (r *SalonGormRepository) SearchByLocation(
	ctx context.Context,
	q domain.LocationQuery,
) ([]domain.Nearby, error) {

	var out []domain.Nearby
	if err := r.db.WithContext(ctx).
		Raw(nearbySQL, q.Latitude, q.Longitude, q.Latitude, q.RadiusKm, q.Limit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Cities
// --------------------------------------------------

func (r *SalonGormRepository) ListCities(
	ctx context.Context,
	f domain.CityFilter,
) ([]models.City, error) {

	if f.Limit <= 0 {
		f.Limit = domain.DefaultCityLimit
	}

	q := r.db.WithContext(ctx).
		Model(&models.City{}).
		Select("cities.*").
		Preload("State").
		Joins("JOIN states ON states.id = cities.state_id")

	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("cities.name ILIKE ?", "%"+s+"%")
	}
	if f.StateCode != "" {
		q = q.Where("UPPER(states.code) = ?", strings.ToUpper(strings.TrimSpace(f.StateCode)))
	}

	var cities []models.City
	if err := q.Order("cities.name ASC").Limit(f.Limit).Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// --------------------------------------------------
// Contact
// --------------------------------------------------

func (r *SalonGormRepository) CreateContact(
	ctx context.Context,
	sub *models.ContactSubmission,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Model(&models.Salon{}).
			Where("id = ?", sub.SalonID).
			UpdateColumn("contact_form_submissions", gorm.Expr("contact_form_submissions + 1")).Error
	})
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (r *SalonGormRepository) ListPhotos(
	ctx context.Context,
	salonID uint,
) ([]models.SalonPhoto, error) {

	var photos []models.SalonPhoto
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("sort_order ASC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *SalonGormRepository) GetPhoto(
	ctx context.Context,
	id string,
) (*models.SalonPhoto, error) {

	var p models.SalonPhoto
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SalonGormRepository) CountPhotos(
	ctx context.Context,
	salonID uint,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.SalonPhoto{}).
		Where("salon_id = ?", salonID).
		Count(&n).Error
	return n, err
}

func (r *SalonGormRepository) CreatePhoto(
	ctx context.Context,
	p *models.SalonPhoto,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&models.Salon{}).
			Where("id = ?", p.SalonID).
			UpdateColumn("photo_count", gorm.Expr("photo_count + 1")).Error
	})
}

func (r *SalonGormRepository) DeletePhoto(
	ctx context.Context,
	p *models.SalonPhoto,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SalonPhoto{}, "id = ?", p.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Salon{}).
			Where("id = ?", p.SalonID).
			UpdateColumn("photo_count", gorm.Expr("GREATEST(photo_count - 1, 0)")).Error; err != nil {
			return err
		}
		if !p.IsPrimary {
			return nil
		}

		// promote the next photo
		var next models.SalonPhoto
		err := tx.Where("salon_id = ?", p.SalonID).Order("sort_order ASC").First(&next).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).UpdateColumn("is_primary", true).Error
	})
}
