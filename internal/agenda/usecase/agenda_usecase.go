package usecase

import (
	"agenda-backend/internal/agenda/domain"
	"agenda-backend/internal/agenda/dto"
	"agenda-backend/internal/agenda/repository"
)

// agendaUsecase implements AgendaUsecase interface
type agendaUsecase struct {
	categoriaRepo    repository.CategoriaRepository
	actividadRepo    repository.ActividadRepository
	recordatorioRepo repository.RecordatorioRepository
}

// NewAgendaUsecase creates a new instance of agendaUsecase
func NewAgendaUsecase(
	categoriaRepo repository.CategoriaRepository,
	actividadRepo repository.ActividadRepository,
	recordatorioRepo repository.RecordatorioRepository,
) AgendaUsecase {
	return &agendaUsecase{
		categoriaRepo:    categoriaRepo,
		actividadRepo:    actividadRepo,
		recordatorioRepo: recordatorioRepo,
	}
}

// --- Categorias ---

func (u *agendaUsecase) CreateCategoria(req *dto.CategoriaRequest) (*domain.Categoria, error) {
	categoria := &domain.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Color:       req.Color,
	}
	if err := u.categoriaRepo.Create(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (u *agendaUsecase) GetCategoriaByID(id uint) (*domain.Categoria, error) {
	categoria, err := u.categoriaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, ErrCategoriaNotFound
	}
	return categoria, nil
}

func (u *agendaUsecase) GetCategorias() ([]domain.Categoria, error) {
	return u.categoriaRepo.FindAll()
}

// UpdateCategoria replaces every field of the stored row with the
// payload's values.
func (u *agendaUsecase) UpdateCategoria(id uint, req *dto.CategoriaRequest) (*domain.Categoria, error) {
	categoria, err := u.GetCategoriaByID(id)
	if err != nil {
		return nil, err
	}

	categoria.Nombre = req.Nombre
	categoria.Descripcion = req.Descripcion
	categoria.Color = req.Color

	if err := u.categoriaRepo.Update(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// DeleteCategoria removes the category; dependent activities (and their
// reminders) go with it through the ON DELETE CASCADE constraints.
func (u *agendaUsecase) DeleteCategoria(id uint) error {
	if _, err := u.GetCategoriaByID(id); err != nil {
		return err
	}
	return u.categoriaRepo.Delete(id)
}

// --- Actividades ---

func (u *agendaUsecase) CreateActividad(req *dto.ActividadRequest) (*domain.Actividad, error) {
	if _, err := u.GetCategoriaByID(req.CategoriaID); err != nil {
		return nil, err
	}

	actividad := &domain.Actividad{
		Titulo:      req.Titulo,
		Prioridad:   domain.Prioridad(req.Prioridad),
		Estado:      domain.EstadoActividad(req.Estado),
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		CategoriaID: req.CategoriaID,
	}
	if err := u.actividadRepo.Create(actividad); err != nil {
		return nil, err
	}
	return actividad, nil
}

func (u *agendaUsecase) GetActividadByID(id uint) (*domain.Actividad, error) {
	actividad, err := u.actividadRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if actividad == nil {
		return nil, ErrActividadNotFound
	}
	return actividad, nil
}

func (u *agendaUsecase) GetActividades() ([]domain.Actividad, error) {
	return u.actividadRepo.FindAll()
}

func (u *agendaUsecase) UpdateActividad(id uint, req *dto.ActividadRequest) (*domain.Actividad, error) {
	actividad, err := u.GetActividadByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := u.GetCategoriaByID(req.CategoriaID); err != nil {
		return nil, err
	}

	actividad.Titulo = req.Titulo
	actividad.Prioridad = domain.Prioridad(req.Prioridad)
	actividad.Estado = domain.EstadoActividad(req.Estado)
	actividad.FechaInicio = req.FechaInicio
	actividad.FechaFin = req.FechaFin
	actividad.CategoriaID = req.CategoriaID

	if err := u.actividadRepo.Update(actividad); err != nil {
		return nil, err
	}
	return actividad, nil
}

func (u *agendaUsecase) DeleteActividad(id uint) error {
	if _, err := u.GetActividadByID(id); err != nil {
		return err
	}
	return u.actividadRepo.Delete(id)
}

// --- Recordatorios ---

func (u *agendaUsecase) CreateRecordatorio(req *dto.RecordatorioRequest) (*domain.Recordatorio, error) {
	if _, err := u.GetActividadByID(req.ActividadID); err != nil {
		return nil, err
	}

	recordatorio := &domain.Recordatorio{
		Titulo:        req.Titulo,
		FechaHora:     req.FechaHora,
		Repeticion:    repeticionOrDefault(req.Repeticion),
		Estado:        estadoOrDefault(req.Estado),
		NotaAdicional: req.NotaAdicional,
		ActividadID:   req.ActividadID,
	}
	if err := u.recordatorioRepo.Create(recordatorio); err != nil {
		return nil, err
	}
	return recordatorio, nil
}

func (u *agendaUsecase) GetRecordatorioByID(id uint) (*domain.Recordatorio, error) {
	recordatorio, err := u.recordatorioRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if recordatorio == nil {
		return nil, ErrRecordatorioNotFound
	}
	return recordatorio, nil
}

func (u *agendaUsecase) GetRecordatorios() ([]domain.Recordatorio, error) {
	return u.recordatorioRepo.FindAll()
}

func (u *agendaUsecase) UpdateRecordatorio(id uint, req *dto.RecordatorioRequest) (*domain.Recordatorio, error) {
	recordatorio, err := u.GetRecordatorioByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := u.GetActividadByID(req.ActividadID); err != nil {
		return nil, err
	}

	recordatorio.Titulo = req.Titulo
	recordatorio.FechaHora = req.FechaHora
	recordatorio.Repeticion = repeticionOrDefault(req.Repeticion)
	recordatorio.Estado = estadoOrDefault(req.Estado)
	recordatorio.NotaAdicional = req.NotaAdicional
	recordatorio.ActividadID = req.ActividadID

	if err := u.recordatorioRepo.Update(recordatorio); err != nil {
		return nil, err
	}
	return recordatorio, nil
}

func (u *agendaUsecase) DeleteRecordatorio(id uint) error {
	if _, err := u.GetRecordatorioByID(id); err != nil {
		return err
	}
	return u.recordatorioRepo.Delete(id)
}

func repeticionOrDefault(value string) domain.Repeticion {
	if value == "" {
		return domain.RepeticionNinguna
	}
	return domain.Repeticion(value)
}

func estadoOrDefault(value string) domain.EstadoRecordatorio {
	if value == "" {
		return domain.RecordatorioActivo
	}
	return domain.EstadoRecordatorio(value)
}
