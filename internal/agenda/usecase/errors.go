package usecase

import "errors"

var (
	ErrCategoriaNotFound    = errors.New("categoria not found")
	ErrActividadNotFound    = errors.New("actividad not found")
	ErrRecordatorioNotFound = errors.New("recordatorio not found")
)
