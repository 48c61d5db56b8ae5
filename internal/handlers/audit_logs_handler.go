package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
	auditDateLayout   = "2006-01-02"
)

// AuditReader is satisfied by *audit.Logger.
type AuditReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader AuditReader
}

func NewAuditLogsHandler(r AuditReader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: r}
}

// List pages through audit entries. from/to are calendar days and both
// inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}
	limit := queryInt(c, "limit", defaultAuditLimit)
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	f := audit.Filter{
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	if v := c.Query("actor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_actor_id", "actor_id must be a UUID")
			return
		}
		f.ActorID = &id
	}

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(auditDateLayout, v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "from must be YYYY-MM-DD")
			return
		}
		f.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(auditDateLayout, v)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "to must be YYYY-MM-DD")
			return
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		httperr.WithDetails(c, http.StatusInternalServerError, "audit_list_failed", err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":    logs,
		"page":    page,
		"limit":   limit,
		"total":   total,
		"success": true,
	})
}
