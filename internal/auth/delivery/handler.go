package delivery

import (
	"errors"
	"net/http"

	"agenda-backend/internal/auth/domain"
	"agenda-backend/internal/auth/dto"
	"agenda-backend/internal/auth/usecase"
	"agenda-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new user account
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": httperr.FieldErrors(err)})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrUsuarioExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login checks credentials and returns a bearer token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": httperr.FieldErrors(err)})
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Me returns the authenticated user
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := c.MustGet("user").(*domain.Usuario)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, user)
}
