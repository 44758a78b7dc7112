package domain

import "time"

// Repeticion represents how often a reminder fires
type Repeticion string

const (
	RepeticionDiaria  Repeticion = "diaria"
	RepeticionSemanal Repeticion = "semanal"
	RepeticionMensual Repeticion = "mensual"
	RepeticionAnual   Repeticion = "anual"
	RepeticionNinguna Repeticion = "ninguna"
)

// EstadoRecordatorio represents whether a reminder is switched on
type EstadoRecordatorio string

const (
	RecordatorioActivo   EstadoRecordatorio = "activo"
	RecordatorioInactivo EstadoRecordatorio = "inactivo"
)

// Recordatorio is a scheduled notification tied to an Actividad
type Recordatorio struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	Titulo        string             `json:"titulo" gorm:"not null"`
	FechaHora     time.Time          `json:"fecha_hora" gorm:"not null"`
	Repeticion    Repeticion         `json:"repeticion" gorm:"default:ninguna"`
	Estado        EstadoRecordatorio `json:"estado" gorm:"default:activo"`
	NotaAdicional string             `json:"nota_adicional,omitempty"`
	ActividadID   uint               `json:"actividad_id" gorm:"index;not null"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
