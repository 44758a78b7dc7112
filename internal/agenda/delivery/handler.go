package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"agenda-backend/internal/agenda/dto"
	"agenda-backend/internal/agenda/usecase"
	"agenda-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

// AgendaHandler handles CRUD requests for categories, activities
// and reminders.
type AgendaHandler struct {
	agendaUsecase usecase.AgendaUsecase
}

// NewAgendaHandler creates a new AgendaHandler
func NewAgendaHandler(agendaUsecase usecase.AgendaUsecase) *AgendaHandler {
	return &AgendaHandler{
		agendaUsecase: agendaUsecase,
	}
}

// parseID reads the :id path parameter. ok is false when the
// parameter is absent (collection route) or not a number.
func parseID(c *gin.Context) (id uint, present bool, ok bool) {
	raw := c.Param("id")
	if raw == "" {
		return 0, false, false
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, true, false
	}
	return uint(parsed), true, true
}

func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": httperr.FieldErrors(err)})
}

// --- Categorias ---

// CreateCategoria creates a new category
// POST /categorias/
func (h *AgendaHandler) CreateCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	categoria, err := h.agendaUsecase.CreateCategoria(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categoria)
}

// GetCategorias returns one category when :id is present, otherwise
// the whole collection.
// GET /categorias/ and GET /categorias/:id
func (h *AgendaHandler) GetCategorias(c *gin.Context) {
	id, present, ok := parseID(c)
	if !present {
		categorias, err := h.agendaUsecase.GetCategorias()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, categorias)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "categoria not found"})
		return
	}

	categoria, err := h.agendaUsecase.GetCategoriaByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoriaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "categoria not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categoria)
}

// UpdateCategoria fully replaces a category
// PUT /categorias/:id
func (h *AgendaHandler) UpdateCategoria(c *gin.Context) {
	id, _, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "categoria not found"})
		return
	}

	var req dto.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	categoria, err := h.agendaUsecase.UpdateCategoria(id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoriaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "categoria not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categoria)
}

// DeleteCategoria removes a category and, by cascade, its activities
// DELETE /categorias/:id
func (h *AgendaHandler) DeleteCategoria(c *gin.Context) {
	id, _, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "categoria not found"})
		return
	}

	if err := h.agendaUsecase.DeleteCategoria(id); err != nil {
		if errors.Is(err, usecase.ErrCategoriaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "categoria not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Actividades ---

// CreateActividad creates a new activity
// POST /actividades/
func (h *AgendaHandler) CreateActividad(c *gin.Context) {
	var req dto.ActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	actividad, err := h.agendaUsecase.CreateActividad(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoriaNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"categoria_id": "no such categoria"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, actividad)
}

// GetActividades returns one activity when :id is present, otherwise
// the whole collection.
// GET /actividades/ and GET /actividades/:id
func (h *AgendaHandler) GetActividades(c *gin.Context) {
	id, present, ok := parseID(c)
	if !present {
		actividades, err := h.agendaUsecase.GetActividades()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, actividades)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad not found"})
		return
	}

	actividad, err := h.agendaUsecase.GetActividadByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrActividadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "actividad not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, actividad)
}

// UpdateActividad fully replaces an activity
// PUT /actividades/:id
func (h *AgendaHandler) UpdateActividad(c *gin.Context) {
	id, _, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad not found"})
		return
	}

	var req dto.ActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	actividad, err := h.agendaUsecase.UpdateActividad(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrActividadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "actividad not found"})
		case errors.Is(err, usecase.ErrCategoriaNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"categoria_id": "no such categoria"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, actividad)
}

// DeleteActividad removes an activity and, by cascade, its reminders
// DELETE /actividades/:id
func (h *AgendaHandler) DeleteActividad(c *gin.Context) {
	id, _, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad not found"})
		return
	}

	if err := h.agendaUsecase.DeleteActividad(id); err != nil {
		if errors.Is(err, usecase.ErrActividadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "actividad not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Recordatorios ---

// CreateRecordatorio creates a new reminder
// POST /recordatorios/
func (h *AgendaHandler) CreateRecordatorio(c *gin.Context) {
	var req dto.RecordatorioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	recordatorio, err := h.agendaUsecase.CreateRecordatorio(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrActividadNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"actividad_id": "no such actividad"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recordatorio)
}

// GetRecordatorios returns one reminder when :id is present, otherwise
// the whole collection.
// GET /recordatorios/ and GET /recordatorios/:id
func (h *AgendaHandler) GetRecordatorios(c *gin.Context) {
	id, present, ok := parseID(c)
	if !present {
		recordatorios, err := h.agendaUsecase.GetRecordatorios()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recordatorios)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recordatorio not found"})
		return
	}

	recordatorio, err := h.agendaUsecase.GetRecordatorioByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrRecordatorioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recordatorio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recordatorio)
}

// UpdateRecordatorio fully replaces a reminder
// PUT /recordatorios/:id
func (h *AgendaHandler) UpdateRecordatorio(c *gin.Context) {
	id, _, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recordatorio not found"})
		return
	}

	var req dto.RecordatorioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	recordatorio, err := h.agendaUsecase.UpdateRecordatorio(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecordatorioNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recordatorio not found"})
		case errors.Is(err, usecase.ErrActividadNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"actividad_id": "no such actividad"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, recordatorio)
}

// DeleteRecordatorio removes a reminder
// DELETE /recordatorios/:id
func (h *AgendaHandler) DeleteRecordatorio(c *gin.Context) {
	id, _, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recordatorio not found"})
		return
	}

	if err := h.agendaUsecase.DeleteRecordatorio(id); err != nil {
		if errors.Is(err, usecase.ErrRecordatorioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recordatorio not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
