package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nailnav/nailnav/internal/middleware"
	"github.com/nailnav/nailnav/internal/usecase/vendorapp"
)

// VendorHandler serves the signed-in vendor's own application.
type VendorHandler struct {
	get    *vendorapp.GetOwn
	draft  *vendorapp.SaveDraft
	submit *vendorapp.Submit
}

func NewVendorHandler(
	get *vendorapp.GetOwn,
	draft *vendorapp.SaveDraft,
	submit *vendorapp.Submit,
) *VendorHandler {
	return &VendorHandler{get: get, draft: draft, submit: submit}
}

func (h *VendorHandler) Application(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	app, err := h.get.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, "application_fetch_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

func (h *VendorHandler) SaveDraft(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	app, err := h.draft.Execute(c.Request.Context(), userID, patch)
	if err != nil {
		writeError(c, "draft_save_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

func (h *VendorHandler) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	app, err := h.submit.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, "submit_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}
