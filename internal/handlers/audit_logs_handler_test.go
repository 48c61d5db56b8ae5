package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/models"
)

type fakeAuditReader struct {
	last audit.Filter
	logs []models.AuditLog
}

func (f *fakeAuditReader) List(_ context.Context, fl audit.Filter) ([]models.AuditLog, int64, error) {
	f.last = fl
	return f.logs, int64(len(f.logs)), nil
}

func TestAuditLogsFilters(t *testing.T) {
	reader := &fakeAuditReader{logs: []models.AuditLog{{ID: 1, Action: "application_approved"}}}
	r := gin.New()
	r.GET("/logs", NewAuditLogsHandler(reader).List)

	actor := uuid.New()
	w := doJSON(r, http.MethodGet,
		"/logs?action=application_approved&actor_id="+actor.String()+"&from=2024-03-01&to=2024-03-31&page=3&limit=20", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	f := reader.last
	assert.Equal(t, "application_approved", f.Action)
	require.NotNil(t, f.ActorID)
	assert.Equal(t, actor, *f.ActorID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *f.From)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *f.To)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 40, f.Offset)

	body := decode(t, w)
	assert.Equal(t, 1.0, body["total"])
	assert.Len(t, body["logs"], 1)
}

func TestAuditLogsDefaultsAndBadInput(t *testing.T) {
	reader := &fakeAuditReader{}
	r := gin.New()
	r.GET("/logs", NewAuditLogsHandler(reader).List)

	w := doJSON(r, http.MethodGet, "/logs?limit=5000&page=-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, reader.last.Limit)
	assert.Equal(t, 0, reader.last.Offset)
	assert.Equal(t, []any{}, decode(t, w)["logs"])

	w = doJSON(r, http.MethodGet, "/logs?actor_id=42", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/logs?from=01/03/2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_date", decode(t, w)["error"])
}
