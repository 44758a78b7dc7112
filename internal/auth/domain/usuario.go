package domain

import "time"

type Usuario struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	NombreUsuario string    `json:"nombre_usuario" gorm:"uniqueIndex;not null"`
	Correo        string    `json:"correo" gorm:"uniqueIndex;not null"`
	Contrasena    string    `json:"-" gorm:"not null"` // Never return the hash in JSON
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
