package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/domain/content"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/httpresp"
	"github.com/nailnav/nailnav/internal/middleware"
	"github.com/nailnav/nailnav/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BlogHandler struct {
	repo  content.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewBlogHandler(repo content.Repository, a *audit.Dispatcher, log *zap.Logger) *BlogHandler {
	return &BlogHandler{repo: repo, audit: a, log: log, now: time.Now}
}

type BlogPostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
}

func (r *BlogPostRequest) apply(p *models.BlogPost) {
	p.Title = r.Title
	p.Slug = r.Slug
	p.Excerpt = r.Excerpt
	p.Content = r.Content
	p.Category = r.Category
	p.Tags = r.Tags
}

// ======================================================
// PUBLIC
// ======================================================

func (h *BlogHandler) List(c *gin.Context) {
	h.list(c, true)
}

func (h *BlogHandler) Get(c *gin.Context) {
	p, err := h.repo.GetPostBySlug(c.Request.Context(), c.Param("slug"), true)
	if err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "post_not_found", "Post not found")
			return
		}
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}
	httpresp.OK(c, "post", p)
}

// ======================================================
// ADMIN
// ======================================================

func (h *BlogHandler) AdminList(c *gin.Context) {
	h.list(c, false)
}

func (h *BlogHandler) list(c *gin.Context, publishedOnly bool) {
	posts, err := h.repo.ListPosts(c.Request.Context(), content.PostFilter{
		PublishedOnly: publishedOnly,
		Category:      c.Query("category"),
		Limit:         queryInt(c, "limit", 0),
		Offset:        queryInt(c, "offset", 0),
	})
	if err != nil {
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}
	httpresp.List(c, "posts", posts)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var p models.BlogPost
	req.apply(&p)
	if err := content.Prepare(&p); err != nil {
		writeError(c, "post_create_failed", err)
		return
	}
	if req.IsPublished {
		content.TogglePublish(&p, h.now())
	}

	if err := h.repo.CreatePost(c.Request.Context(), &p); err != nil {
		h.saveFailed(c, err)
		return
	}

	h.record(c, "blog_post_created", &p)
	httpresp.Created(c, "post", p)
}

func (h *BlogHandler) Update(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	req.apply(p)
	if err := content.Prepare(p); err != nil {
		writeError(c, "post_update_failed", err)
		return
	}
	if req.IsPublished != p.IsPublished {
		content.TogglePublish(p, h.now())
	}

	if err := h.repo.UpdatePost(c.Request.Context(), p); err != nil {
		h.saveFailed(c, err)
		return
	}

	h.record(c, "blog_post_updated", p)
	httpresp.OK(c, "post", p)
}

func (h *BlogHandler) TogglePublish(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	content.TogglePublish(p, h.now())
	if err := h.repo.UpdatePost(c.Request.Context(), p); err != nil {
		h.saveFailed(c, err)
		return
	}

	action := "blog_post_unpublished"
	if p.IsPublished {
		action = "blog_post_published"
	}
	h.record(c, action, p)
	httpresp.OK(c, "post", p)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	if err := h.repo.DeletePost(c.Request.Context(), p.ID); err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "post_not_found", "Post not found")
			return
		}
		httperr.WithDetails(c, http.StatusInternalServerError, "post_delete_failed", err)
		return
	}

	h.record(c, "blog_post_deleted", p)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ======================================================
// HELPERS
// ======================================================

func (h *BlogHandler) load(c *gin.Context) (*models.BlogPost, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_post_id", "Invalid post id")
		return nil, false
	}

	p, err := h.repo.GetPost(c.Request.Context(), id)
	if err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "post_not_found", "Post not found")
			return nil, false
		}
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return nil, false
	}
	return p, true
}

func (h *BlogHandler) saveFailed(c *gin.Context, err error) {
	if dberr.IsDuplicate(err) {
		httperr.Conflict(c, "slug_already_exists", "A post with this slug already exists")
		return
	}
	h.log.Error("blog post save failed", zap.Error(err))
	httperr.WithDetails(c, http.StatusInternalServerError, "post_save_failed", err)
}

func (h *BlogHandler) record(c *gin.Context, action string, p *models.BlogPost) {
	ev := audit.Event{
		Action:   action,
		Entity:   "blog_post",
		EntityID: p.Slug,
	}
	if userID, ok := middleware.UserID(c); ok {
		ev.ActorID = &userID
	}
	h.audit.Dispatch(ev)
}
