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

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Review approves or rejects a pending application.
type Review struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReview(repo domain.Repository, audit *audit.Dispatcher) *Review {
	return &Review{repo: repo, audit: audit}
}

func (uc *Review) Execute(
	ctx context.Context,
	reviewerID uuid.UUID,
	applicationID uuid.UUID,
	decision Decision,
	notes string,
) (*models.VendorApplication, error) {

	app, err := uc.repo.GetApplication(ctx, applicationID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("application_not_found")
		}
		return nil, err
	}

	var action string
	switch decision {
	case DecisionApprove:
		err = domain.Approve(app, notes)
		action = "application_approved"
	case DecisionReject:
		err = domain.Reject(app, notes)
		action = "application_rejected"
	default:
		return nil, httperr.ErrBusiness("invalid_decision")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &reviewerID,
		Action:   action,
		Entity:   "vendor_application",
		EntityID: app.ID.String(),
		Metadata: map[string]any{"notes": notes},
	})

	return app, nil
}

type ListApplications struct {
	repo domain.Repository
}

func NewListApplications(repo domain.Repository) *ListApplications {
	return &ListApplications{repo: repo}
}

// Execute lists applications, optionally filtered by status.
func (uc *ListApplications) Execute(ctx context.Context, status string) ([]models.VendorApplication, error) {
	if status != "" && !domain.Status(status).Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	return uc.repo.ListApplications(ctx, status)
}
