package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime("short post"))
	assert.Equal(t, 3, ReadTime(strings.Repeat("word ", 650)))
}

func TestPrepare(t *testing.T) {
	p := &models.BlogPost{Title: "  Gel vs Shellac: What's the Difference? "}
	require.NoError(t, Prepare(p))
	assert.Equal(t, "gel-vs-shellac-what-s-the-difference", p.Slug)
	assert.Equal(t, 1, p.ReadTime)

	err := Prepare(&models.BlogPost{Title: " "})
	assert.True(t, httperr.IsBusiness(err, "title_required"))
}

func TestTogglePublishKeepsFirstDate(t *testing.T) {
	first := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	p := &models.BlogPost{}

	TogglePublish(p, first)
	assert.True(t, p.IsPublished)
	assert.Equal(t, first, *p.PublishedAt)

	TogglePublish(p, first.AddDate(0, 1, 0))
	assert.False(t, p.IsPublished)

	TogglePublish(p, first.AddDate(0, 2, 0))
	assert.True(t, p.IsPublished)
	assert.Equal(t, first, *p.PublishedAt)
}
