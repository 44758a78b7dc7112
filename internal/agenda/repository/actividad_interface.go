package repository

import "agenda-backend/internal/agenda/domain"

// ActividadRepository defines the interface for activity data access
type ActividadRepository interface {
	Create(actividad *domain.Actividad) error
	FindByID(id uint) (*domain.Actividad, error)
	FindAll() ([]domain.Actividad, error)
	Update(actividad *domain.Actividad) error
	Delete(id uint) error
}
