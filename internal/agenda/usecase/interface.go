package usecase

import (
	"agenda-backend/internal/agenda/domain"
	"agenda-backend/internal/agenda/dto"
)

// AgendaUsecase defines the CRUD business logic over categories,
// activities and reminders.
type AgendaUsecase interface {
	CreateCategoria(req *dto.CategoriaRequest) (*domain.Categoria, error)
	GetCategoriaByID(id uint) (*domain.Categoria, error)
	GetCategorias() ([]domain.Categoria, error)
	UpdateCategoria(id uint, req *dto.CategoriaRequest) (*domain.Categoria, error)
	DeleteCategoria(id uint) error

	CreateActividad(req *dto.ActividadRequest) (*domain.Actividad, error)
	GetActividadByID(id uint) (*domain.Actividad, error)
	GetActividades() ([]domain.Actividad, error)
	UpdateActividad(id uint, req *dto.ActividadRequest) (*domain.Actividad, error)
	DeleteActividad(id uint) error

	CreateRecordatorio(req *dto.RecordatorioRequest) (*domain.Recordatorio, error)
	GetRecordatorioByID(id uint) (*domain.Recordatorio, error)
	GetRecordatorios() ([]domain.Recordatorio, error)
	UpdateRecordatorio(id uint, req *dto.RecordatorioRequest) (*domain.Recordatorio, error)
	DeleteRecordatorio(id uint) error
}
