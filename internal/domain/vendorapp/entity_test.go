package vendorapp

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

func TestIsAdmin(t *testing.T) {
	cases := []struct {
		name   string
		salon  string
		status Status
		want   bool
	}{
		{"marker approved", AdminMarker, StatusApproved, true},
		{"variant approved", AdminMarkerVariant, StatusApproved, true},
		{"case insensitive substring", "ADMINISTRATION nails", StatusApproved, true},
		{"marker pending", AdminMarker, StatusPending, false},
		{"plain approved", "Sydney Nail Studio", StatusApproved, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := &models.VendorApplication{SalonName: tc.salon, Status: string(tc.status)}
			assert.Equal(t, tc.want, IsAdmin(app))
		})
	}
	assert.False(t, IsAdmin(nil))
}

func TestIsAdminIgnoresRoleColumn(t *testing.T) {
	role := RoleAdmin
	app := &models.VendorApplication{SalonName: "Glow Nails", Status: string(StatusApproved), Role: &role}
	assert.False(t, IsAdmin(app))
}

func TestRenamingAdminRevokesAccess(t *testing.T) {
	app := &models.VendorApplication{SalonName: "Glow Nails", Status: string(StatusPending)}
	Promote(app, "", "bootstrap")
	require.True(t, IsAdmin(app))
	assert.Equal(t, AdminMarker, app.SalonName)
	require.NotNil(t, app.Role)
	assert.Equal(t, RoleAdmin, *app.Role)

	app.SalonName = "Glow Nails"
	assert.False(t, IsAdmin(app))
}

func TestStatusGuards(t *testing.T) {
	app := &models.VendorApplication{Status: string(StatusDraft)}
	assert.True(t, httperr.IsBusiness(Approve(app, ""), "invalid_state"))

	require.NoError(t, Submit(app))
	assert.Equal(t, string(StatusPending), app.Status)
	assert.True(t, httperr.IsBusiness(Submit(app), "invalid_state"))

	assert.True(t, httperr.IsBusiness(Reject(app, "  "), "rejection_reason_required"))
	assert.Equal(t, string(StatusPending), app.Status)

	require.NoError(t, Reject(app, "incomplete address"))
	assert.Equal(t, string(StatusRejected), app.Status)
	assert.Equal(t, "incomplete address", *app.AdminNotes)

	assert.True(t, httperr.IsBusiness(Approve(app, ""), "invalid_state"))
}

func TestApproveKeepsNotesOptional(t *testing.T) {
	app := &models.VendorApplication{Status: string(StatusPending)}
	require.NoError(t, Approve(app, ""))
	assert.Nil(t, app.AdminNotes)
	assert.Equal(t, string(StatusApproved), app.Status)
}

func TestLinkUserOnlyFillsNull(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	app := &models.VendorApplication{}

	assert.True(t, LinkUser(app, first))
	assert.False(t, LinkUser(app, second))
	assert.Equal(t, first, *app.UserID)
}

func TestMergeDraftIsShallow(t *testing.T) {
	app := &models.VendorApplication{}
	require.NoError(t, MergeDraft(app, map[string]any{"step": 1, "hours": map[string]any{"mon": "9-5"}}))
	require.NoError(t, MergeDraft(app, map[string]any{"step": 2, "hours": map[string]any{"tue": "9-5"}}))

	assert.JSONEq(t, `{"step":2,"hours":{"tue":"9-5"}}`, string(app.DraftData))
}
