package domain

import "time"

// Prioridad represents activity priority level
type Prioridad string

const (
	PrioridadAlta  Prioridad = "alta"
	PrioridadMedia Prioridad = "media"
	PrioridadBaja  Prioridad = "baja"
)

// EstadoActividad represents the current state of an activity
type EstadoActividad string

const (
	ActividadPendiente  EstadoActividad = "pendiente"
	ActividadEnProgreso EstadoActividad = "en_progreso"
	ActividadCompletada EstadoActividad = "completada"
	ActividadCancelada  EstadoActividad = "cancelada"
)

// Actividad is a task owned by a Categoria.
// Date fields hold calendar dates in 2006-01-02 form.
type Actividad struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Titulo      string          `json:"titulo" gorm:"not null"`
	Prioridad   Prioridad       `json:"prioridad" gorm:"not null"`
	Estado      EstadoActividad `json:"estado" gorm:"not null"`
	FechaInicio *string         `json:"fecha_inicio,omitempty"`
	FechaFin    *string         `json:"fecha_fin,omitempty"`
	CategoriaID uint            `json:"categoria_id" gorm:"index;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Recordatorios []Recordatorio `json:"-" gorm:"foreignKey:ActividadID;constraint:OnDelete:CASCADE"`
}
