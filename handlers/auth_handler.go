package handlers

import (
	"errors"
	"net/http"

	"CeibaCheckIn/models"
	"CeibaCheckIn/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the staff login.
type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /auth/login (public).
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(req)
	switch {
	case errors.Is(err, services.ErrAuthNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case err != nil: // wrong password or signing failure; both are a failed login
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrInvalidCredentials.Error()})
	default:
		c.JSON(http.StatusOK, models.AuthResponse{Token: tok})
	}
}
