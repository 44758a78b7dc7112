package usecase

import (
	"agenda-backend/internal/auth/domain"
	"agenda-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	// Register creates a new user with a hashed password
	Register(req *dto.RegisterRequest) (*domain.Usuario, error)

	// Login checks credentials and issues an access token
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// ValidateToken verifies an access token and resolves its user
	ValidateToken(tokenString string) (*domain.Usuario, error)
}
