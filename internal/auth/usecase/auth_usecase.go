package usecase

import (
	"time"

	"agenda-backend/internal/auth/domain"
	"agenda-backend/internal/auth/dto"
	"agenda-backend/internal/auth/repository"
	"agenda-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (*domain.Usuario, error) {
	existing, err := u.userRepo.FindByCorreo(req.Correo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsuarioExists
	}

	existing, err = u.userRepo.FindByNombreUsuario(req.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsuarioExists
	}

	hashedPassword, err := repository.HashPassword(req.Contrasena)
	if err != nil {
		return nil, err
	}

	user := &domain.Usuario{
		NombreUsuario: req.NombreUsuario,
		Correo:        req.Correo,
		Contrasena:    hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByCorreo(req.Correo)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Contrasena, user.Contrasena) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (u *authUsecase) generateAccessToken(user *domain.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.NombreUsuario,
		"jti": uuid.New().String(),
		"exp": time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*domain.Usuario, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByNombreUsuario(subject)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrInvalidToken
	}

	return user, nil
}
