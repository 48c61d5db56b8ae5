package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/models"
)

func blogRouter(repo *fakeContent) *gin.Engine {
	h := NewBlogHandler(repo, nil, zap.NewNop())
	h.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/api/blog", h.List)
	r.GET("/api/blog/:slug", h.Get)
	r.GET("/api/admin/blog", h.AdminList)
	r.POST("/api/admin/blog", h.Create)
	r.PUT("/api/admin/blog/:id", h.Update)
	r.POST("/api/admin/blog/:id/publish", h.TogglePublish)
	r.DELETE("/api/admin/blog/:id", h.Delete)
	return r
}

func TestBlogCreateDerivesSlugAndPublishes(t *testing.T) {
	repo := &fakeContent{}
	r := blogRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/admin/blog", map[string]any{
		"title":        "  Winter Nail Trends  ",
		"content":      "short",
		"is_published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Len(t, repo.posts, 1)
	p := repo.posts[0]
	assert.Equal(t, "Winter Nail Trends", p.Title)
	assert.Equal(t, "winter-nail-trends", p.Slug)
	assert.Equal(t, 1, p.ReadTime)
	assert.True(t, p.IsPublished)
	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, 2024, p.PublishedAt.Year())
}

func TestBlogCreateRejections(t *testing.T) {
	repo := &fakeContent{}
	r := blogRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/admin/blog", map[string]any{"content": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/admin/blog", map[string]any{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "title_required", decode(t, w)["error"])

	repo.saveErr = &pgconn.PgError{Code: "23505"}
	w = doJSON(r, http.MethodPost, "/api/admin/blog", map[string]any{"title": "Taken"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slug_already_exists", decode(t, w)["error"])
}

func TestBlogPublicOnlySeesPublished(t *testing.T) {
	repo := &fakeContent{posts: []*models.BlogPost{
		{ID: 1, Title: "Live", Slug: "live", IsPublished: true},
		{ID: 2, Title: "Draft", Slug: "draft"},
	}, nextID: 2}
	r := blogRouter(repo)

	w := doJSON(r, http.MethodGet, "/api/blog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, decode(t, w)["count"])

	w = doJSON(r, http.MethodGet, "/api/admin/blog", nil)
	assert.Equal(t, 2.0, decode(t, w)["count"])

	w = doJSON(r, http.MethodGet, "/api/blog/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/blog/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "post_not_found", decode(t, w)["error"])
}

func TestBlogTogglePublishKeepsFirstPublishDate(t *testing.T) {
	first := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeContent{posts: []*models.BlogPost{
		{ID: 7, Title: "Old", Slug: "old", PublishedAt: &first},
	}, nextID: 7}
	r := blogRouter(repo)

	w := doJSON(r, http.MethodPost, "/api/admin/blog/7/publish", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.posts[0].IsPublished)
	assert.Equal(t, first, *repo.posts[0].PublishedAt)

	w = doJSON(r, http.MethodPost, "/api/admin/blog/7/publish", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, repo.posts[0].IsPublished)

	w = doJSON(r, http.MethodPost, "/api/admin/blog/99/publish", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/api/admin/blog/abc/publish", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogUpdateAndDelete(t *testing.T) {
	repo := &fakeContent{posts: []*models.BlogPost{
		{ID: 3, Title: "Before", Slug: "before"},
	}, nextID: 3}
	r := blogRouter(repo)

	w := doJSON(r, http.MethodPut, "/api/admin/blog/3", map[string]any{
		"title": "After",
		"slug":  "Custom Slug",
		"tags":  []string{"gel"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "custom-slug", repo.posts[0].Slug)
	assert.Equal(t, []string{"gel"}, []string(repo.posts[0].Tags))
	assert.False(t, repo.posts[0].IsPublished)

	w = doJSON(r, http.MethodDelete, "/api/admin/blog/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.posts)

	w = doJSON(r, http.MethodDelete, "/api/admin/blog/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
