package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nailnav/nailnav/internal/importer"
	"github.com/nailnav/nailnav/internal/models"
)

// ImportGormRepository backs salon imports and seeding.
type ImportGormRepository struct {
	db *gorm.DB
}

func NewImportGormRepository(db *gorm.DB) *ImportGormRepository {
	return &ImportGormRepository{db: db}
}

var _ importer.Store = (*ImportGormRepository)(nil)

func (r *ImportGormRepository) ListStates(ctx context.Context) ([]models.State, error) {
	var states []models.State
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (r *ImportGormRepository) FindCity(
	ctx context.Context,
	name string,
	stateID uint,
) (*models.City, error) {

	var c models.City
	if err := r.db.WithContext(ctx).
		Where("name = ? AND state_id = ?", name, stateID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ImportGormRepository) CreateCity(ctx context.Context, c *models.City) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ImportGormRepository) FindSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var s models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("id ASC").
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ImportGormRepository) CreateSalon(ctx context.Context, s *models.Salon) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// counters the site maintains; an import never carries them.
var engagementColumns = []string{
	"view_count",
	"photo_count",
	"contact_form_submissions",
}

// OverwriteSalon upserts on the primary key so every imported column is
// replaced. Engagement counters keep their stored values.
func (r *ImportGormRepository) OverwriteSalon(
	ctx context.Context,
	id uint,
	s *models.Salon,
) error {
	s.ID = id
	return r.db.WithContext(ctx).
		Omit(engagementColumns...).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}

const recountSQL = `
UPDATE cities SET salon_count = (
    SELECT COUNT(*) FROM salons
    WHERE salons.city_id = cities.id AND salons.is_published = true
)`

func (r *ImportGormRepository) RecountCities(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec(recountSQL).Error
}
