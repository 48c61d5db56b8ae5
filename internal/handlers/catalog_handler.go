package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nailnav/nailnav/internal/domain/content"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/httpresp"
)

type CatalogHandler struct {
	repo content.Repository
}

func NewCatalogHandler(repo content.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// Services lists active categories with their service types.
func (h *CatalogHandler) Services(c *gin.Context) {
	cats, err := h.repo.ListCategories(c.Request.Context())
	if err != nil {
		httperr.WithDetails(c, http.StatusInternalServerError, "database_query_failed", err)
		return
	}
	httpresp.List(c, "categories", cats)
}
