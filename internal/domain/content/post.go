package content

import (
	"strings"
	"time"

	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

const wordsPerMinute = 200

// ReadTime estimates minutes to read content, never less than one.
func ReadTime(content string) int {
	n := len(strings.Fields(content)) / wordsPerMinute
	if n < 1 {
		return 1
	}
	return n
}

// Prepare fills derived fields before a post is saved.
func Prepare(p *models.BlogPost) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return httperr.ErrBusiness("title_required")
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = salon.Slug(p.Title)
	} else {
		p.Slug = salon.Slug(p.Slug)
	}
	p.ReadTime = ReadTime(p.Content)
	return nil
}

// TogglePublish flips the published flag; the first publish stamps PublishedAt.
func TogglePublish(p *models.BlogPost, now time.Time) {
	p.IsPublished = !p.IsPublished
	if p.IsPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}
