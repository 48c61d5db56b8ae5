package vendorapp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailnav/nailnav/internal/auth"
	domain "github.com/nailnav/nailnav/internal/domain/vendorapp"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

const secret = "test-secret"

func businessCode(t *testing.T, err error) string {
	t.Helper()
	var be httperr.BusinessError
	require.True(t, errors.As(err, &be), "expected business error, got %v", err)
	return be.Code
}

func seedUser(t *testing.T, repo *fakeRepo, email, password string) *models.AuthUser {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.AuthUser{ID: uuid.New(), Email: email, PasswordHash: string(h)}
	repo.users[email] = u
	return u
}

func TestRegisterCreatesUserAndApplication(t *testing.T) {
	repo := newFakeRepo()
	uc := NewRegister(repo, nil, zap.NewNop(), nil)

	out, err := uc.Execute(context.Background(), RegisterInput{
		Email:     "  Owner@Example.com ",
		Password:  "hunter22",
		SalonName: "Polished",
		City:      "Sydney",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", out.User.Email)
	require.NotNil(t, out.Application.UserID)
	assert.Equal(t, out.User.ID, *out.Application.UserID)
	assert.Equal(t, "pending", out.Application.Status)
	assert.Equal(t, "AU", out.Application.Country)
	assert.Contains(t, repo.profiles, out.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "taken@example.com", "whatever")
	uc := NewRegister(repo, nil, zap.NewNop(), nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterInput{Email: "nope", Password: "hunter22", SalonName: "x"})
	assert.Equal(t, "invalid_email", businessCode(t, err))

	_, err = uc.Execute(ctx, RegisterInput{Email: "a@b.co", Password: "123", SalonName: "x"})
	assert.Equal(t, "weak_password", businessCode(t, err))

	_, err = uc.Execute(ctx, RegisterInput{Email: "taken@example.com", Password: "hunter22", SalonName: "x"})
	assert.Equal(t, "email_already_registered", businessCode(t, err))
}

func TestRegisterDraftAndProfileFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.profileErr = errors.New("profiles table missing")
	uc := NewRegister(repo, nil, zap.NewNop(), nil)

	out, err := uc.Execute(context.Background(), RegisterInput{
		Email:     "draft@example.com",
		Password:  "hunter22",
		SalonName: "Draft Nails",
		Draft:     true,
		DraftData: map[string]any{"step": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", out.Application.Status)
	assert.JSONEq(t, `{"step":1}`, string(out.Application.DraftData))
	assert.Empty(t, repo.profiles)
}

func TestLoginAdminClassification(t *testing.T) {
	repo := newFakeRepo()
	u := seedUser(t, repo, "boss@example.com", "pw123456")
	repo.apps = append(repo.apps, &models.VendorApplication{
		ID: uuid.New(), UserID: &u.ID, Email: u.Email,
		SalonName: "NailNav Admin", Status: "approved",
	})

	out, err := NewLogin(repo, zap.NewNop(), secret).Execute(context.Background(), "boss@example.com", "pw123456")
	require.NoError(t, err)
	assert.True(t, out.IsAdmin)
	assert.Equal(t, domain.RoleAdmin, out.Role)

	claims, err := auth.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, out.Application.ID.String(), claims.ApplicationID)
}

func TestLoginPendingAdminNameIsVendor(t *testing.T) {
	repo := newFakeRepo()
	u := seedUser(t, repo, "p@example.com", "pw123456")
	repo.apps = append(repo.apps, &models.VendorApplication{
		ID: uuid.New(), UserID: &u.ID, Email: u.Email,
		SalonName: "Admin Salon", Status: "pending",
	})

	out, err := NewLogin(repo, zap.NewNop(), secret).Execute(context.Background(), "p@example.com", "pw123456")
	require.NoError(t, err)
	assert.False(t, out.IsAdmin)
	assert.Equal(t, domain.RoleVendor, out.Role)
}

func TestLoginSelfHealsUserID(t *testing.T) {
	repo := newFakeRepo()
	u := seedUser(t, repo, "heal@example.com", "pw123456")
	repo.apps = append(repo.apps, &models.VendorApplication{
		ID: uuid.New(), Email: u.Email, SalonName: "Heal", Status: "approved",
	})

	out, err := NewLogin(repo, zap.NewNop(), secret).Execute(context.Background(), "HEAL@example.com", "pw123456")
	require.NoError(t, err)
	assert.True(t, out.LinkedByEmail)
	require.NotNil(t, repo.apps[0].UserID)
	assert.Equal(t, u.ID, *repo.apps[0].UserID)
}

func TestLoginToleratesMissingTable(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "solo@example.com", "pw123456")
	repo.userIDErr = &pgconn.PgError{Code: "42P01", Message: `relation "vendor_applications" does not exist`}

	out, err := NewLogin(repo, zap.NewNop(), secret).Execute(context.Background(), "solo@example.com", "pw123456")
	require.NoError(t, err)
	assert.Nil(t, out.Application)
	assert.False(t, out.IsAdmin)
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "x@example.com", "right-pass")
	uc := NewLogin(repo, zap.NewNop(), secret)

	_, err := uc.Execute(context.Background(), "x@example.com", "wrong-pass")
	assert.Equal(t, "invalid_credentials", businessCode(t, err))

	_, err = uc.Execute(context.Background(), "ghost@example.com", "right-pass")
	assert.Equal(t, "invalid_credentials", businessCode(t, err))
}

func TestDraftThenSubmit(t *testing.T) {
	repo := newFakeRepo()
	uid := uuid.New()
	repo.apps = append(repo.apps, &models.VendorApplication{
		ID: uuid.New(), UserID: &uid, Status: "draft",
		DraftData: []byte(`{"a":1,"b":2}`),
	})
	ctx := context.Background()

	app, err := NewSaveDraft(repo, nil).Execute(ctx, uid, map[string]any{"b": 3, "c": "x"})
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(app.DraftData, &got))
	assert.Equal(t, map[string]any{"a": 1.0, "b": 3.0, "c": "x"}, got)

	app, err = NewSubmit(repo, nil).Execute(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)

	// drafts can still be saved after submission; the status stays put
	app, err = NewSaveDraft(repo, nil).Execute(ctx, uid, map[string]any{"d": 1})
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)

	_, err = NewSubmit(repo, nil).Execute(ctx, uuid.New())
	assert.Equal(t, "application_not_found", businessCode(t, err))
}

func TestReviewDecisions(t *testing.T) {
	repo := newFakeRepo()
	a1 := &models.VendorApplication{ID: uuid.New(), Status: "pending"}
	a2 := &models.VendorApplication{ID: uuid.New(), Status: "pending"}
	repo.apps = append(repo.apps, a1, a2)
	uc := NewReview(repo, nil)
	ctx := context.Background()
	reviewer := uuid.New()

	app, err := uc.Execute(ctx, reviewer, a1.ID, DecisionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, "approved", app.Status)

	_, err = uc.Execute(ctx, reviewer, a1.ID, DecisionReject, "late")
	assert.Equal(t, "invalid_state", businessCode(t, err))

	_, err = uc.Execute(ctx, reviewer, a2.ID, DecisionReject, " ")
	assert.Equal(t, "rejection_reason_required", businessCode(t, err))

	_, err = uc.Execute(ctx, reviewer, a2.ID, "maybe", "")
	assert.Equal(t, "invalid_decision", businessCode(t, err))

	_, err = uc.Execute(ctx, reviewer, uuid.New(), DecisionApprove, "")
	assert.Equal(t, "application_not_found", businessCode(t, err))
}

func TestListApplicationsRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.apps = append(repo.apps,
		&models.VendorApplication{ID: uuid.New(), Status: "pending"},
		&models.VendorApplication{ID: uuid.New(), Status: "approved"},
	)
	uc := NewListApplications(repo)

	got, err := uc.Execute(context.Background(), "pending")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.Execute(context.Background(), "archived")
	assert.Equal(t, "invalid_status", businessCode(t, err))
}

func TestRestoreAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("recreates missing application", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "admin@example.com", "pw123456")

		res, err := NewAdmin(repo, zap.NewNop()).Restore(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.Equal(t, domain.AdminMarker, res.Application.SalonName)
		assert.Equal(t, "approved", res.Application.Status)
		assert.Equal(t, u.ID, *res.Application.UserID)
		assert.Equal(t, NotesRecreated, *res.Application.AdminNotes)
	})

	t.Run("links and promotes existing application", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "admin@example.com", "pw123456")
		repo.apps = append(repo.apps, &models.VendorApplication{
			ID: uuid.New(), Email: "admin@example.com", SalonName: "My Salon", Status: "pending",
		})

		res, err := NewAdmin(repo, zap.NewNop()).Restore(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.True(t, res.Linked)
		assert.True(t, domain.IsAdmin(repo.apps[0]))
		assert.Equal(t, u.ID, *repo.apps[0].UserID)
		assert.Equal(t, NotesRestored, *repo.apps[0].AdminNotes)
	})

	t.Run("no-op when already admin", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "admin@example.com", "pw123456")
		repo.apps = append(repo.apps, &models.VendorApplication{
			ID: uuid.New(), UserID: &u.ID, Email: "admin@example.com",
			SalonName: "NailNav Admin", Status: "approved",
		})

		res, err := NewAdmin(repo, zap.NewNop()).Restore(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.Zero(t, repo.updates)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := NewAdmin(newFakeRepo(), zap.NewNop()).Restore(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNoAuthUser)
	})
}

func TestCreateAdminUsesVariantMarker(t *testing.T) {
	repo := newFakeRepo()

	res, err := NewAdmin(repo, zap.NewNop()).Create(context.Background(), "new@example.com", "pw123456", "")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, domain.AdminMarkerVariant, res.Application.SalonName)
	assert.True(t, domain.IsAdmin(res.Application))

	u := repo.users["new@example.com"]
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleAdmin, repo.profiles[u.ID].Role)
	assert.Equal(t, "Administrator", repo.profiles[u.ID].FullName)
}

func TestCreateAdminContinuesWhenProfileUpsertFails(t *testing.T) {
	repo := newFakeRepo()
	repo.upsertErr = errors.New("permission denied for table user_profiles")

	res, err := NewAdmin(repo, zap.NewNop()).Create(context.Background(), "new@example.com", "pw123456", "")
	require.NoError(t, err)
	require.NotNil(t, res.Application)
	assert.True(t, res.Created)
	assert.Equal(t, domain.AdminMarkerVariant, res.Application.SalonName)
	assert.Equal(t, "approved", res.Application.Status)
	assert.Len(t, repo.apps, 1)
	assert.Empty(t, repo.profiles)
}

func TestPromoteOverwritesSalonName(t *testing.T) {
	repo := newFakeRepo()
	repo.apps = append(repo.apps, &models.VendorApplication{
		ID: uuid.New(), Email: "v@example.com", SalonName: "Glam Nails", Status: "rejected",
	})

	res, err := NewAdmin(repo, zap.NewNop()).Promote(context.Background(), "v@example.com")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, domain.AdminMarker, repo.apps[0].SalonName)
	assert.Equal(t, "approved", repo.apps[0].Status)
}

func TestLinkUsers(t *testing.T) {
	repo := newFakeRepo()
	u := seedUser(t, repo, "a@example.com", "pw123456")
	repo.apps = append(repo.apps,
		&models.VendorApplication{ID: uuid.New(), Email: "a@example.com"},
		&models.VendorApplication{ID: uuid.New(), Email: "orphan@example.com"},
	)

	sum, err := NewAdmin(repo, zap.NewNop()).LinkUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Scanned)
	assert.Equal(t, 1, sum.Linked)
	assert.Equal(t, []string{"orphan@example.com"}, sum.Missing)
	assert.Equal(t, u.ID, *repo.apps[0].UserID)
}
