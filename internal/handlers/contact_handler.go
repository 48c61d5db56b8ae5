package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/infra/notify"
	"github.com/nailnav/nailnav/internal/models"
	"github.com/nailnav/nailnav/internal/validators"
)

// Notifier delivers a text message; *notify.SMS satisfies it.
type Notifier interface {
	Send(to, body string) error
}

type ContactHandler struct {
	repo   salon.Repository
	notify Notifier
	log    *zap.Logger
}

// NewContactHandler accepts a nil notifier when SMS is not configured.
func NewContactHandler(repo salon.Repository, n Notifier, log *zap.Logger) *ContactHandler {
	return &ContactHandler{repo: repo, notify: n, log: log}
}

type ContactRequest struct {
	SalonID                uint    `json:"salon_id"`
	VisitorName            string  `json:"visitor_name"`
	VisitorEmail           string  `json:"visitor_email"`
	VisitorPhone           *string `json:"visitor_phone"`
	Subject                *string `json:"subject"`
	Message                string  `json:"message"`
	ServiceInterest        *string `json:"service_interest"`
	PreferredContactMethod string  `json:"preferred_contact_method"`
}

var contactRequired = []string{"salon_id", "visitor_name", "visitor_email", "message"}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	req.VisitorName = strings.TrimSpace(req.VisitorName)
	req.VisitorEmail = strings.TrimSpace(req.VisitorEmail)
	if req.SalonID == 0 || req.VisitorName == "" || req.VisitorEmail == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "missing_required_fields",
			"required": contactRequired,
		})
		return
	}

	if !validators.IsEmailFormat(req.VisitorEmail) {
		httperr.BadRequest(c, "invalid_email", "Invalid email format")
		return
	}

	ctx := c.Request.Context()

	s, err := h.repo.GetPublishedByID(ctx, req.SalonID)
	if err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "salon_not_found", "Salon not found or not available")
			return
		}
		httperr.WithDetails(c, http.StatusInternalServerError, "contact_submit_failed", err)
		return
	}

	method := req.PreferredContactMethod
	if method == "" {
		method = "email"
	}

	sub := models.ContactSubmission{
		SalonID:                s.ID,
		VisitorName:            req.VisitorName,
		VisitorEmail:           req.VisitorEmail,
		VisitorPhone:           req.VisitorPhone,
		Subject:                req.Subject,
		Message:                req.Message,
		ServiceInterest:        req.ServiceInterest,
		PreferredContactMethod: method,
	}

	if err := h.repo.CreateContact(ctx, &sub); err != nil {
		h.log.Error("contact submission failed", zap.Uint("salon_id", s.ID), zap.Error(err))
		httperr.WithDetails(c, http.StatusInternalServerError, "contact_submit_failed", err)
		return
	}

	h.notifySalon(s, &sub)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Contact form submitted successfully",
		"submission_id": sub.ID,
		"salon_name":    s.Name,
	})
}

// notifySalon texts the salon in the background; failures are only logged.
func (h *ContactHandler) notifySalon(s *models.Salon, sub *models.ContactSubmission) {
	if h.notify == nil {
		return
	}
	to := notify.E164(s.Phone)
	if to == "" {
		return
	}

	subject := ""
	if sub.Subject != nil {
		subject = *sub.Subject
	}
	body := notify.ContactMessage(s.Name, sub.VisitorName, subject)

	go func() {
		if err := h.notify.Send(to, body); err != nil {
			h.log.Warn("contact sms failed", zap.Uint("salon_id", s.ID), zap.Error(err))
		}
	}()
}
