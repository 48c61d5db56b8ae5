package vendorapp

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nailnav/nailnav/internal/models"
)

type fakeRepo struct {
	users    map[string]*models.AuthUser
	profiles map[uuid.UUID]*models.UserProfile
	apps     []*models.VendorApplication
	updates  int

	profileErr error
	upsertErr  error
	userIDErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[string]*models.AuthUser{},
		profiles: map[uuid.UUID]*models.UserProfile{},
	}
}

func (f *fakeRepo) FindAuthUserByEmail(_ context.Context, email string) (*models.AuthUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) CreateAuthUser(_ context.Context, u *models.AuthUser) error {
	if _, ok := f.users[u.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeRepo) CreateProfile(_ context.Context, p *models.UserProfile) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) UpsertProfile(_ context.Context, p *models.UserProfile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) CreateApplication(_ context.Context, app *models.VendorApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	f.apps = append(f.apps, app)
	return nil
}

func (f *fakeRepo) GetApplication(_ context.Context, id uuid.UUID) (*models.VendorApplication, error) {
	for _, a := range f.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindApplicationByUserID(_ context.Context, userID uuid.UUID) (*models.VendorApplication, error) {
	if f.userIDErr != nil {
		return nil, f.userIDErr
	}
	for _, a := range f.apps {
		if a.UserID != nil && *a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindApplicationByEmail(_ context.Context, email string) (*models.VendorApplication, error) {
	for _, a := range f.apps {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListApplications(_ context.Context, status string) ([]models.VendorApplication, error) {
	var out []models.VendorApplication
	for _, a := range f.apps {
		if status == "" || a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUnlinkedApplications(_ context.Context) ([]models.VendorApplication, error) {
	var out []models.VendorApplication
	for _, a := range f.apps {
		if a.UserID == nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateApplication(_ context.Context, app *models.VendorApplication) error {
	f.updates++
	for i, a := range f.apps {
		if a.ID == app.ID {
			cp := *app
			f.apps[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
