package vendorapp

import (
	"context"

	"github.com/google/uuid"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/dberr"
	domain "github.com/nailnav/nailnav/internal/domain/vendorapp"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

// SaveDraft merges form progress into the caller's application. The status
// is left alone.
type SaveDraft struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveDraft(repo domain.Repository, audit *audit.Dispatcher) *SaveDraft {
	return &SaveDraft{repo: repo, audit: audit}
}

func (uc *SaveDraft) Execute(
	ctx context.Context,
	userID uuid.UUID,
	patch map[string]any,
) (*models.VendorApplication, error) {

	app, err := ownApplication(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}
	if err := domain.MergeDraft(app, patch); err != nil {
		return nil, httperr.ErrBusiness("invalid_draft_data")
	}
	if err := uc.repo.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "application_draft_saved",
		Entity:   "vendor_application",
		EntityID: app.ID.String(),
	})

	return app, nil
}

type Submit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmit(repo domain.Repository, audit *audit.Dispatcher) *Submit {
	return &Submit{repo: repo, audit: audit}
}

func (uc *Submit) Execute(ctx context.Context, userID uuid.UUID) (*models.VendorApplication, error) {
	app, err := ownApplication(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}
	if err := domain.Submit(app); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "application_submitted",
		Entity:   "vendor_application",
		EntityID: app.ID.String(),
	})

	return app, nil
}

// GetOwn returns the caller's application.
type GetOwn struct {
	repo domain.Repository
}

func NewGetOwn(repo domain.Repository) *GetOwn {
	return &GetOwn{repo: repo}
}

func (uc *GetOwn) Execute(ctx context.Context, userID uuid.UUID) (*models.VendorApplication, error) {
	return ownApplication(ctx, uc.repo, userID)
}

func ownApplication(
	ctx context.Context,
	repo domain.Repository,
	userID uuid.UUID,
) (*models.VendorApplication, error) {

	app, err := repo.FindApplicationByUserID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("application_not_found")
		}
		return nil, err
	}
	return app, nil
}
