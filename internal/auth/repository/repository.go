package repository

import "agenda-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *domain.Usuario) error

	// FindByCorreo finds a user by email, (nil, nil) when absent
	FindByCorreo(correo string) (*domain.Usuario, error)

	// FindByNombreUsuario finds a user by username, (nil, nil) when absent
	FindByNombreUsuario(nombre string) (*domain.Usuario, error)
}
