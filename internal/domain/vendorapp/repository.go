package vendorapp

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailnav/nailnav/internal/models"
)

// Find and Get methods return gorm.ErrRecordNotFound when nothing matches.
type Repository interface {
	// -------- Auth users --------
	FindAuthUserByEmail(
		ctx context.Context,
		email string,
	) (*models.AuthUser, error)

	CreateAuthUser(
		ctx context.Context,
		u *models.AuthUser,
	) error

	// -------- Profiles --------
	CreateProfile(
		ctx context.Context,
		p *models.UserProfile,
	) error

	UpsertProfile(
		ctx context.Context,
		p *models.UserProfile,
	) error

	// -------- Applications --------
	CreateApplication(
		ctx context.Context,
		app *models.VendorApplication,
	) error

	GetApplication(
		ctx context.Context,
		id uuid.UUID,
	) (*models.VendorApplication, error)

	FindApplicationByUserID(
		ctx context.Context,
		userID uuid.UUID,
	) (*models.VendorApplication, error)

	FindApplicationByEmail(
		ctx context.Context,
		email string,
	) (*models.VendorApplication, error)

	ListApplications(
		ctx context.Context,
		status string,
	) ([]models.VendorApplication, error)

	ListUnlinkedApplications(
		ctx context.Context,
	) ([]models.VendorApplication, error)

	UpdateApplication(
		ctx context.Context,
		app *models.VendorApplication,
	) error
}
