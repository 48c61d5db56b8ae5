package vendorapp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailnav/nailnav/internal/auth"
	"github.com/nailnav/nailnav/internal/dberr"
	domain "github.com/nailnav/nailnav/internal/domain/vendorapp"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

type LoginOutput struct {
	User        *models.AuthUser
	Application *models.VendorApplication
	IsAdmin     bool
	Role        string
	Token       string
	// LinkedByEmail is set when the application was found by email and its
	// user_id was patched during this login.
	LinkedByEmail bool
}

type Login struct {
	repo   domain.Repository
	log    *zap.Logger
	secret string
	now    func() time.Time
}

func NewLogin(repo domain.Repository, log *zap.Logger, secret string) *Login {
	return &Login{repo: repo, log: log, secret: secret, now: time.Now}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginOutput, error) {
	email = normalizeEmail(email)

	user, err := uc.repo.FindAuthUserByEmail(ctx, email)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	out := &LoginOutput{User: user, Role: domain.RoleVendor}

	app, viaEmail, err := uc.findApplication(ctx, user.ID, email)
	if err != nil {
		return nil, err
	}

	if app != nil && viaEmail && domain.LinkUser(app, user.ID) {
		if err := uc.repo.UpdateApplication(ctx, app); err != nil {
			uc.log.Warn("user_id self-heal failed",
				zap.String("application_id", app.ID.String()),
				zap.Error(err),
			)
		} else {
			out.LinkedByEmail = true
		}
	}

	out.Application = app
	out.IsAdmin = domain.IsAdmin(app)
	if out.IsAdmin {
		out.Role = domain.RoleAdmin
	}

	var appID *uuid.UUID
	if app != nil {
		appID = &app.ID
	}
	token, err := auth.Issue(uc.secret, user.ID, user.Email, out.Role, appID, uc.now())
	if err != nil {
		return nil, err
	}
	out.Token = token

	return out, nil
}

// findApplication looks up by user id, then by email. A missing table is
// treated like a missing row.
func (uc *Login) findApplication(
	ctx context.Context,
	userID uuid.UUID,
	email string,
) (*models.VendorApplication, bool, error) {

	app, err := uc.repo.FindApplicationByUserID(ctx, userID)
	if err == nil {
		return app, false, nil
	}
	if !uc.isMiss(err) {
		return nil, false, err
	}

	app, err = uc.repo.FindApplicationByEmail(ctx, email)
	if err == nil {
		return app, true, nil
	}
	if !uc.isMiss(err) {
		return nil, false, err
	}
	return nil, false, nil
}

func (uc *Login) isMiss(err error) bool {
	if dberr.IsNotFound(err) {
		return true
	}
	if dberr.IsMissingRelation(err) {
		uc.log.Warn("vendor_applications unavailable", zap.Error(err))
		return true
	}
	return false
}
