package vendorapp

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/dberr"
	domain "github.com/nailnav/nailnav/internal/domain/vendorapp"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
	"github.com/nailnav/nailnav/internal/validators"
)

const minPasswordLength = 6

type RegisterInput struct {
	Email    string
	Password string

	SalonName       string
	BusinessAddress string
	City            string
	State           string
	Country         string
	PostalCode      string
	OwnerName       string
	Phone           string
	Website         string

	// Draft keeps the application in draft until it is submitted.
	Draft     bool
	DraftData map[string]any
}

type RegisterOutput struct {
	User        *models.AuthUser
	Application *models.VendorApplication
}

type Register struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	log      *zap.Logger
	resolver validators.Resolver
}

// NewRegister builds the use case; resolver may be nil to skip the MX check.
func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	resolver validators.Resolver,
) *Register {
	return &Register{repo: repo, audit: audit, log: log, resolver: resolver}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	email := normalizeEmail(in.Email)

	// ===============================
	// Validation
	// ===============================
	if !validators.IsEmailFormat(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if uc.resolver != nil && !validators.IsEmailDomainValid(ctx, uc.resolver, email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrBusiness("weak_password")
	}
	if strings.TrimSpace(in.SalonName) == "" {
		return nil, httperr.ErrBusiness("salon_name_required")
	}

	_, err := uc.repo.FindAuthUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, httperr.ErrBusiness("email_already_registered")
	case !dberr.IsNotFound(err):
		return nil, err
	}

	// ===============================
	// Auth user
	// ===============================
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AuthUser{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := uc.repo.CreateAuthUser(ctx, user); err != nil {
		if dberr.IsDuplicate(err) {
			return nil, httperr.ErrBusiness("email_already_registered")
		}
		return nil, err
	}

	// ===============================
	// Application
	// ===============================
	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = "AU"
	}

	app := &models.VendorApplication{
		UserID:          &user.ID,
		SalonName:       strings.TrimSpace(in.SalonName),
		BusinessAddress: in.BusinessAddress,
		City:            in.City,
		State:           in.State,
		Country:         country,
		PostalCode:      in.PostalCode,
		OwnerName:       in.OwnerName,
		Email:           email,
		Phone:           in.Phone,
		Website:         in.Website,
		Status:          string(domain.InitialStatus(in.Draft)),
	}
	if len(in.DraftData) > 0 {
		b, err := json.Marshal(in.DraftData)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_draft_data")
		}
		app.DraftData = datatypes.JSON(b)
	}

	if err := uc.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}

	// profile is best effort; login works without it
	profile := &models.UserProfile{
		ID:       user.ID,
		Email:    email,
		FullName: in.OwnerName,
		Role:     domain.RoleVendor,
		IsActive: true,
	}
	if err := uc.repo.CreateProfile(ctx, profile); err != nil {
		uc.log.Warn("profile insert failed",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   "application_registered",
		Entity:   "vendor_application",
		EntityID: app.ID.String(),
		Metadata: map[string]any{"status": app.Status},
	})

	return &RegisterOutput{User: user, Application: app}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
