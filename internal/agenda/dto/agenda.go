package dto

import "time"

type CategoriaRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	Color       string `json:"color"`
}

type ActividadRequest struct {
	Titulo      string  `json:"titulo" binding:"required"`
	Prioridad   string  `json:"prioridad" binding:"required,oneof=alta media baja"`
	Estado      string  `json:"estado" binding:"required,oneof=pendiente en_progreso completada cancelada"`
	FechaInicio *string `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	FechaFin    *string `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
	CategoriaID uint    `json:"categoria_id" binding:"required"`
}

type RecordatorioRequest struct {
	Titulo        string    `json:"titulo" binding:"required"`
	FechaHora     time.Time `json:"fecha_hora" binding:"required"`
	Repeticion    string    `json:"repeticion" binding:"omitempty,oneof=diaria semanal mensual anual ninguna"`
	Estado        string    `json:"estado" binding:"omitempty,oneof=activo inactivo"`
	NotaAdicional string    `json:"nota_adicional"`
	ActividadID   uint      `json:"actividad_id" binding:"required"`
}
