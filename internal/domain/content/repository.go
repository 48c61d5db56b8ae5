package content

import (
	"context"

	"github.com/nailnav/nailnav/internal/models"
)

type PostFilter struct {
	PublishedOnly bool
	Category      string
	Limit         int
	Offset        int
}

// Find and Get methods return gorm.ErrRecordNotFound when nothing matches.
type Repository interface {
	// -------- Blog --------
	ListPosts(
		ctx context.Context,
		f PostFilter,
	) ([]models.BlogPost, error)

	GetPostBySlug(
		ctx context.Context,
		slug string,
		publishedOnly bool,
	) (*models.BlogPost, error)

	GetPost(
		ctx context.Context,
		id uint,
	) (*models.BlogPost, error)

	CreatePost(
		ctx context.Context,
		p *models.BlogPost,
	) error

	UpdatePost(
		ctx context.Context,
		p *models.BlogPost,
	) error

	DeletePost(
		ctx context.Context,
		id uint,
	) error

	// -------- Service catalog --------
	ListCategories(
		ctx context.Context,
	) ([]models.ServiceCategory, error)
}
