package vendorapp

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

const (
	AdminMarker        = "NailNav Admin"
	AdminMarkerVariant = "Admin"

	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// IsAdmin classifies an application as an administrator: the salon name
// contains "admin" (case-insensitive) and the status is approved.
// The role column is never consulted.
func IsAdmin(app *models.VendorApplication) bool {
	if app == nil {
		return false
	}
	return strings.Contains(strings.ToLower(app.SalonName), "admin") &&
		Status(app.Status) == StatusApproved
}

// ===============================
// Domain Actions
// ===============================

func Submit(app *models.VendorApplication) error {
	if err := CanSubmit(Status(app.Status)); err != nil {
		return err
	}
	app.Status = string(StatusPending)
	return nil
}

func Approve(app *models.VendorApplication, notes string) error {
	if err := CanReview(Status(app.Status)); err != nil {
		return err
	}
	app.Status = string(StatusApproved)
	if notes = strings.TrimSpace(notes); notes != "" {
		app.AdminNotes = &notes
	}
	return nil
}

func Reject(app *models.VendorApplication, notes string) error {
	if err := CanReview(Status(app.Status)); err != nil {
		return err
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return httperr.ErrBusiness("rejection_reason_required")
	}
	app.Status = string(StatusRejected)
	app.AdminNotes = &notes
	return nil
}

// Promote turns any application into an admin one. The salon name is
// overwritten with the marker; the original name is lost.
func Promote(app *models.VendorApplication, marker, notes string) {
	if marker == "" {
		marker = AdminMarker
	}
	role := RoleAdmin
	app.Status = string(StatusApproved)
	app.SalonName = marker
	app.Role = &role
	if notes != "" {
		app.AdminNotes = &notes
	}
}

// LinkUser fills a missing user_id and reports whether it changed anything.
func LinkUser(app *models.VendorApplication, userID uuid.UUID) bool {
	if app.UserID != nil {
		return false
	}
	app.UserID = &userID
	return true
}

// MergeDraft shallow-merges patch into the application's draft data.
func MergeDraft(app *models.VendorApplication, patch map[string]any) error {
	current := map[string]any{}
	if len(app.DraftData) > 0 && string(app.DraftData) != "null" {
		if err := json.Unmarshal(app.DraftData, &current); err != nil {
			return err
		}
	}
	for k, v := range patch {
		current[k] = v
	}
	b, err := json.Marshal(current)
	if err != nil {
		return err
	}
	app.DraftData = datatypes.JSON(b)
	return nil
}
