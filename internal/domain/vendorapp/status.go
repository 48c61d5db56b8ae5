package vendorapp

import "github.com/nailnav/nailnav/internal/httperr"

// ===============================
// Application Status
// ===============================

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func InitialStatus(draft bool) Status {
	if draft {
		return StatusDraft
	}
	return StatusPending
}

func CanSubmit(current Status) error {
	if current != StatusDraft {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReview(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
