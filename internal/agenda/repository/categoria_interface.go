package repository

import "agenda-backend/internal/agenda/domain"

// CategoriaRepository defines the interface for category data access
type CategoriaRepository interface {
	Create(categoria *domain.Categoria) error
	FindByID(id uint) (*domain.Categoria, error)
	FindAll() ([]domain.Categoria, error)
	Update(categoria *domain.Categoria) error
	Delete(id uint) error
}
