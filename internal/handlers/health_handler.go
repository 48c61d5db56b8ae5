package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	env string
	now func() time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   h.now().UTC().Format(time.RFC3339Nano),
		"environment": h.env,
	})
}
