package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/httpresp"
	"github.com/nailnav/nailnav/internal/middleware"
	"github.com/nailnav/nailnav/internal/usecase/vendorapp"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	list   *vendorapp.ListApplications
	review *vendorapp.Review
}

func NewAdminHandler(list *vendorapp.ListApplications, review *vendorapp.Review) *AdminHandler {
	return &AdminHandler{list: list, review: review}
}

type ReviewRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// APPLICATIONS
// ======================================================

func (h *AdminHandler) Applications(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, "application_list_failed", err)
		return
	}
	httpresp.List(c, "applications", apps)
}

func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, vendorapp.DecisionApprove)
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, vendorapp.DecisionReject)
}

func (h *AdminHandler) decide(c *gin.Context, d vendorapp.Decision) {
	reviewerID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "")
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_application_id", "Invalid application id")
		return
	}

	// notes are optional; an empty body is fine
	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	app, err := h.review.Execute(c.Request.Context(), reviewerID, appID, d, req.Notes)
	if err != nil {
		writeError(c, "review_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}
