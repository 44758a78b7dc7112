package repository

import "agenda-backend/internal/agenda/domain"

// RecordatorioRepository defines the interface for reminder data access
type RecordatorioRepository interface {
	Create(recordatorio *domain.Recordatorio) error
	FindByID(id uint) (*domain.Recordatorio, error)
	FindAll() ([]domain.Recordatorio, error)
	Update(recordatorio *domain.Recordatorio) error
	Delete(id uint) error
}
