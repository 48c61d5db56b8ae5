package handlers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/nailnav/nailnav/internal/domain/content"
	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/models"
)

// -------- salon.Repository --------

type fakeSalons struct {
	mu sync.Mutex

	salons   []models.Salon
	nearby   []salon.Nearby
	cities   []models.City
	contacts []models.ContactSubmission
	photos   []models.SalonPhoto

	lastFilter salon.ListFilter
	lastQuery  salon.LocationQuery
	views      chan uint

	err        error
	contactErr error
	photoErr   error
}

var _ salon.Repository = (*fakeSalons)(nil)

func newFakeSalons() *fakeSalons {
	return &fakeSalons{views: make(chan uint, 8)}
}

func (f *fakeSalons) ListPublished(_ context.Context, fl salon.ListFilter) ([]models.Salon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = fl
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Salon
	for _, s := range f.salons {
		if s.IsPublished {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSalons) Featured(_ context.Context, limit int) ([]models.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Salon(nil), f.salons...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSalons) GetPublishedBySlug(_ context.Context, slug string) (*models.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.salons {
		if f.salons[i].Slug == slug && f.salons[i].IsPublished {
			s := f.salons[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalons) GetPublishedByID(ctx context.Context, id uint) (*models.Salon, error) {
	s, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSalons) GetByID(_ context.Context, id uint) (*models.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.salons {
		if f.salons[i].ID == id {
			s := f.salons[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalons) IncrementViews(_ context.Context, id uint) error {
	f.views <- id
	return nil
}

func (f *fakeSalons) SearchByLocation(_ context.Context, q salon.LocationQuery) ([]salon.Nearby, error) {
	f.lastQuery = q
	return f.nearby, f.err
}

func (f *fakeSalons) ListCities(_ context.Context, cf salon.CityFilter) ([]models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.City
	for _, c := range f.cities {
		if cf.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(cf.Search)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeSalons) CreateContact(_ context.Context, sub *models.ContactSubmission) error {
	if f.contactErr != nil {
		return f.contactErr
	}
	sub.ID = uint(len(f.contacts) + 1)
	f.contacts = append(f.contacts, *sub)
	return nil
}

func (f *fakeSalons) ListPhotos(_ context.Context, salonID uint) ([]models.SalonPhoto, error) {
	var out []models.SalonPhoto
	for _, p := range f.photos {
		if p.SalonID == salonID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeSalons) GetPhoto(_ context.Context, id string) (*models.SalonPhoto, error) {
	for i := range f.photos {
		if f.photos[i].ID == id {
			p := f.photos[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalons) CountPhotos(ctx context.Context, salonID uint) (int64, error) {
	list, _ := f.ListPhotos(ctx, salonID)
	return int64(len(list)), nil
}

func (f *fakeSalons) CreatePhoto(_ context.Context, p *models.SalonPhoto) error {
	if f.photoErr != nil {
		return f.photoErr
	}
	f.photos = append(f.photos, *p)
	return nil
}

func (f *fakeSalons) DeletePhoto(_ context.Context, p *models.SalonPhoto) error {
	for i := range f.photos {
		if f.photos[i].ID == p.ID {
			f.photos = append(f.photos[:i], f.photos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// -------- content.Repository --------

type fakeContent struct {
	posts   []*models.BlogPost
	cats    []models.ServiceCategory
	nextID  uint
	saveErr error
}

var _ content.Repository = (*fakeContent)(nil)

func (f *fakeContent) ListPosts(_ context.Context, pf content.PostFilter) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range f.posts {
		if pf.PublishedOnly && !p.IsPublished {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeContent) GetPostBySlug(_ context.Context, slug string, publishedOnly bool) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug && (!publishedOnly || p.IsPublished) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContent) GetPost(_ context.Context, id uint) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContent) CreatePost(_ context.Context, p *models.BlogPost) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.posts = append(f.posts, &cp)
	return nil
}

func (f *fakeContent) UpdatePost(_ context.Context, p *models.BlogPost) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i, existing := range f.posts {
		if existing.ID == p.ID {
			cp := *p
			f.posts[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeContent) DeletePost(_ context.Context, id uint) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeContent) ListCategories(context.Context) ([]models.ServiceCategory, error) {
	return f.cats, nil
}

// -------- adapters --------

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return "", s.putErr
	}
	s.objects[key] = data
	return "https://cdn.test/" + key, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	delete(s.objects, key)
	return nil
}

type sentSMS struct{ to, body string }

type fakeNotifier struct {
	sent chan sentSMS
}

func (n *fakeNotifier) Send(to, body string) error {
	n.sent <- sentSMS{to, body}
	return nil
}

type fakeTable struct {
	exists    bool
	existsErr error
	createErr error
	created   bool
}

func (t *fakeTable) Exists(context.Context) (bool, error) { return t.exists, t.existsErr }

func (t *fakeTable) Create(context.Context) error {
	if t.createErr != nil {
		return t.createErr
	}
	t.created = true
	t.exists = true
	return nil
}

func (t *fakeTable) SQL() string { return "CREATE TABLE IF NOT EXISTS vendor_applications ();" }

var errDB = errors.New("connection refused")
