package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/nailnav/nailnav/internal/domain/vendorapp"
	"github.com/nailnav/nailnav/internal/models"
)

type VendorAppGormRepository struct {
	db *gorm.DB
}

func NewVendorAppGormRepository(db *gorm.DB) *VendorAppGormRepository {
	return &VendorAppGormRepository{db: db}
}

var _ domain.Repository = (*VendorAppGormRepository)(nil)

// --------------------------------------------------
// Auth users
// --------------------------------------------------

func (r *VendorAppGormRepository) FindAuthUserByEmail(
	ctx context.Context,
	email string,
) (*models.AuthUser, error) {

	var u models.AuthUser
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *VendorAppGormRepository) CreateAuthUser(
	ctx context.Context,
	u *models.AuthUser,
) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(u).Error
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *VendorAppGormRepository) CreateProfile(
	ctx context.Context,
	p *models.UserProfile,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *VendorAppGormRepository) UpsertProfile(
	ctx context.Context,
	p *models.UserProfile,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "role", "is_active", "updated_at"}),
		}).
		Create(p).Error
}

// --------------------------------------------------
// Applications
// --------------------------------------------------

func (r *VendorAppGormRepository) CreateApplication(
	ctx context.Context,
	app *models.VendorApplication,
) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *VendorAppGormRepository) GetApplication(
	ctx context.Context,
	id uuid.UUID,
) (*models.VendorApplication, error) {

	var app models.VendorApplication
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *VendorAppGormRepository) FindApplicationByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*models.VendorApplication, error) {

	var app models.VendorApplication
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *VendorAppGormRepository) FindApplicationByEmail(
	ctx context.Context,
	email string,
) (*models.VendorApplication, error) {

	var app models.VendorApplication
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC").
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *VendorAppGormRepository) ListApplications(
	ctx context.Context,
	status string,
) ([]models.VendorApplication, error) {

	q := r.db.WithContext(ctx).Model(&models.VendorApplication{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []models.VendorApplication
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *VendorAppGormRepository) ListUnlinkedApplications(
	ctx context.Context,
) ([]models.VendorApplication, error) {

	var apps []models.VendorApplication
	if err := r.db.WithContext(ctx).
		Where("user_id IS NULL").
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *VendorAppGormRepository) UpdateApplication(
	ctx context.Context,
	app *models.VendorApplication,
) error {
	return r.db.WithContext(ctx).Save(app).Error
}
