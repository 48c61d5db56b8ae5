package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nailnav/nailnav/internal/middleware"
	"github.com/nailnav/nailnav/internal/usecase/vendorapp"
)

type AuthHandler struct {
	register *vendorapp.Register
	login    *vendorapp.Login
}

func NewAuthHandler(register *vendorapp.Register, login *vendorapp.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`

	SalonName       string `json:"salon_name"`
	BusinessAddress string `json:"business_address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	PostalCode      string `json:"postal_code"`
	OwnerName       string `json:"owner_name"`
	Phone           string `json:"phone"`
	Website         string `json:"website"`

	Draft     bool           `json:"draft"`
	DraftData map[string]any `json:"draft_data"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	out, err := h.register.Execute(c.Request.Context(), vendorapp.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		SalonName:       req.SalonName,
		BusinessAddress: req.BusinessAddress,
		City:            req.City,
		State:           req.State,
		Country:         req.Country,
		PostalCode:      req.PostalCode,
		OwnerName:       req.OwnerName,
		Phone:           req.Phone,
		Website:         req.Website,
		Draft:           req.Draft,
		DraftData:       req.DraftData,
	})
	if err != nil {
		writeError(c, "registration_failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"user":        gin.H{"id": out.User.ID, "email": out.User.Email},
		"application": out.Application,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, "login_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"token":       out.Token,
		"role":        out.Role,
		"is_admin":    out.IsAdmin,
		"user":        gin.H{"id": out.User.ID, "email": out.User.Email},
		"application": out.Application,
	})
}

// Me echoes the caller's token claims.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	appID, _ := c.Get(middleware.ContextApplicationID)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":             userID,
			"email":          c.GetString(middleware.ContextUserEmail),
			"role":           c.GetString(middleware.ContextUserRole),
			"application_id": appID,
		},
	})
}
