package vendorapp

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailnav/nailnav/internal/dberr"
	domain "github.com/nailnav/nailnav/internal/domain/vendorapp"
	"github.com/nailnav/nailnav/internal/models"
)

const (
	NotesRestored  = "Administrator account - restored admin access"
	NotesRecreated = "Administrator account - recreated after deletion"
	NotesCreated   = "Administrator account"
)

var ErrNoAuthUser = errors.New("no auth user with that email")

type AdminResult struct {
	Application *models.VendorApplication
	// Created is set when no application existed and one was inserted.
	Created bool
	// Changed is false when the application was already an admin one.
	Changed bool
	Linked  bool
}

// Admin bundles the operator tasks that grant administrator access.
type Admin struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewAdmin(repo domain.Repository, log *zap.Logger) *Admin {
	return &Admin{repo: repo, log: log}
}

// Promote marks the application owned by email as an admin one.
func (uc *Admin) Promote(ctx context.Context, email string) (*AdminResult, error) {
	app, err := uc.repo.FindApplicationByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	res := &AdminResult{Application: app}
	if domain.IsAdmin(app) {
		return res, nil
	}

	domain.Promote(app, domain.AdminMarker, NotesRestored)
	if err := uc.repo.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}
	res.Changed = true

	uc.log.Info("application promoted",
		zap.String("email", app.Email),
		zap.String("application_id", app.ID.String()),
	)
	return res, nil
}

// Restore repairs an admin whose application lost its user link or
// admin marker, recreating the application when it is gone.
func (uc *Admin) Restore(ctx context.Context, email string) (*AdminResult, error) {
	email = normalizeEmail(email)

	user, err := uc.repo.FindAuthUserByEmail(ctx, email)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrNoAuthUser
		}
		return nil, err
	}

	app, err := uc.repo.FindApplicationByEmail(ctx, email)
	switch {
	case dberr.IsNotFound(err):
		app = &models.VendorApplication{
			UserID:    &user.ID,
			Email:     email,
			Country:   "AU",
			OwnerName: "Administrator",
		}
		domain.Promote(app, domain.AdminMarker, NotesRecreated)
		if err := uc.repo.CreateApplication(ctx, app); err != nil {
			return nil, err
		}
		uc.log.Info("admin application recreated", zap.String("email", email))
		return &AdminResult{Application: app, Created: true, Changed: true, Linked: true}, nil
	case err != nil:
		return nil, err
	}

	res := &AdminResult{Application: app}
	if domain.LinkUser(app, user.ID) {
		res.Linked = true
		res.Changed = true
	}
	if !domain.IsAdmin(app) {
		domain.Promote(app, domain.AdminMarker, NotesRestored)
		res.Changed = true
	}
	if !res.Changed {
		return res, nil
	}

	if err := uc.repo.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}
	uc.log.Info("admin access restored",
		zap.String("email", email),
		zap.Bool("linked", res.Linked),
	)
	return res, nil
}

// Create provisions a brand-new admin: credentials, profile and application.
// An existing auth user with the same email is reused and its password left alone.
func (uc *Admin) Create(ctx context.Context, email, password, fullName string) (*AdminResult, error) {
	email = normalizeEmail(email)

	user, err := uc.repo.FindAuthUserByEmail(ctx, email)
	switch {
	case dberr.IsNotFound(err):
		if len(password) < minPasswordLength {
			return nil, errors.New("password must be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user = &models.AuthUser{Email: email, PasswordHash: string(hashed), EmailConfirmed: true}
		if err := uc.repo.CreateAuthUser(ctx, user); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if strings.TrimSpace(fullName) == "" {
		fullName = "Administrator"
	}
	if err := uc.repo.UpsertProfile(ctx, &models.UserProfile{
		ID:       user.ID,
		Email:    email,
		FullName: fullName,
		Role:     domain.RoleAdmin,
		IsActive: true,
	}); err != nil {
		// The application marker still grants admin access without a profile row.
		uc.log.Warn("admin profile upsert failed", zap.String("email", email), zap.Error(err))
	}

	app, err := uc.repo.FindApplicationByEmail(ctx, email)
	created := false
	switch {
	case dberr.IsNotFound(err):
		app = &models.VendorApplication{Email: email, Country: "AU", OwnerName: fullName}
		created = true
	case err != nil:
		return nil, err
	}

	domain.LinkUser(app, user.ID)
	domain.Promote(app, domain.AdminMarkerVariant, NotesCreated)

	if created {
		err = uc.repo.CreateApplication(ctx, app)
	} else {
		err = uc.repo.UpdateApplication(ctx, app)
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info("admin created", zap.String("email", email), zap.Bool("new_application", created))
	return &AdminResult{Application: app, Created: created, Changed: true, Linked: true}, nil
}

type LinkSummary struct {
	Scanned int
	Linked  int
	Missing []string
}

// LinkUsers fills user_id on every application whose email matches an
// auth user. Applications with no matching user are reported in Missing.
func (uc *Admin) LinkUsers(ctx context.Context) (*LinkSummary, error) {
	apps, err := uc.repo.ListUnlinkedApplications(ctx)
	if err != nil {
		return nil, err
	}

	sum := &LinkSummary{Scanned: len(apps)}
	for i := range apps {
		app := &apps[i]

		user, err := uc.repo.FindAuthUserByEmail(ctx, normalizeEmail(app.Email))
		if err != nil {
			if dberr.IsNotFound(err) {
				sum.Missing = append(sum.Missing, app.Email)
				continue
			}
			return sum, err
		}

		if !domain.LinkUser(app, user.ID) {
			continue
		}
		if err := uc.repo.UpdateApplication(ctx, app); err != nil {
			uc.log.Warn("link failed", zap.String("email", app.Email), zap.Error(err))
			continue
		}
		sum.Linked++
	}

	return sum, nil
}

// UserIDFor is a convenience used by the CLI to print the auth user id.
func (uc *Admin) UserIDFor(ctx context.Context, email string) (uuid.UUID, error) {
	u, err := uc.repo.FindAuthUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}
