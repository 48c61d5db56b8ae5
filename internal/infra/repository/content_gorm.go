package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/nailnav/nailnav/internal/domain/content"
	"github.com/nailnav/nailnav/internal/models"
)

type ContentGormRepository struct {
	db *gorm.DB
}

func NewContentGormRepository(db *gorm.DB) *ContentGormRepository {
	return &ContentGormRepository{db: db}
}

var _ domain.Repository = (*ContentGormRepository)(nil)

// --------------------------------------------------
// Blog
// --------------------------------------------------

func (r *ContentGormRepository) ListPosts(
	ctx context.Context,
	f domain.PostFilter,
) ([]models.BlogPost, error) {

	q := r.db.WithContext(ctx).Model(&models.BlogPost{})
	if f.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var posts []models.BlogPost
	if err := q.
		Order("published_at DESC NULLS LAST").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *ContentGormRepository) GetPostBySlug(
	ctx context.Context,
	slug string,
	publishedOnly bool,
) (*models.BlogPost, error) {

	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var p models.BlogPost
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ContentGormRepository) GetPost(
	ctx context.Context,
	id uint,
) (*models.BlogPost, error) {

	var p models.BlogPost
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ContentGormRepository) CreatePost(
	ctx context.Context,
	p *models.BlogPost,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ContentGormRepository) UpdatePost(
	ctx context.Context,
	p *models.BlogPost,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ContentGormRepository) DeletePost(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *ContentGormRepository) ListCategories(
	ctx context.Context,
) ([]models.ServiceCategory, error) {

	var cats []models.ServiceCategory
	if err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("service_types.name ASC")
		}).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
