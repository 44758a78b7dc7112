package domain

import "time"

// Categoria groups activities under a user-facing label
type Categoria struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nombre      string    `json:"nombre" gorm:"not null"`
	Descripcion string    `json:"descripcion,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Actividades []Actividad `json:"-" gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
}
