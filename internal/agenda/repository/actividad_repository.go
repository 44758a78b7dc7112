package repository

import (
	"errors"
	"time"

	"agenda-backend/internal/agenda/domain"

	"gorm.io/gorm"
)

// actividadRepository implements ActividadRepository using GORM
type actividadRepository struct {
	db *gorm.DB
}

// NewActividadRepository creates a new instance of actividadRepository
func NewActividadRepository(db *gorm.DB) ActividadRepository {
	return &actividadRepository{db: db}
}

func (r *actividadRepository) Create(actividad *domain.Actividad) error {
	actividad.CreatedAt = time.Now()
	actividad.UpdatedAt = time.Now()
	return r.db.Create(actividad).Error
}

func (r *actividadRepository) FindByID(id uint) (*domain.Actividad, error) {
	var actividad domain.Actividad
	err := r.db.Where("id = ?", id).First(&actividad).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &actividad, nil
}

func (r *actividadRepository) FindAll() ([]domain.Actividad, error) {
	var actividades []domain.Actividad
	if err := r.db.Find(&actividades).Error; err != nil {
		return nil, err
	}
	return actividades, nil
}

func (r *actividadRepository) Update(actividad *domain.Actividad) error {
	actividad.UpdatedAt = time.Now()
	return r.db.Save(actividad).Error
}

func (r *actividadRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Actividad{}, "id = ?", id).Error
}
