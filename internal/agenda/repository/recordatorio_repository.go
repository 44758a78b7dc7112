package repository

import (
	"errors"
	"time"

	"agenda-backend/internal/agenda/domain"

	"gorm.io/gorm"
)

// recordatorioRepository implements RecordatorioRepository using GORM
type recordatorioRepository struct {
	db *gorm.DB
}

// NewRecordatorioRepository creates a new instance of recordatorioRepository
func NewRecordatorioRepository(db *gorm.DB) RecordatorioRepository {
	return &recordatorioRepository{db: db}
}

func (r *recordatorioRepository) Create(recordatorio *domain.Recordatorio) error {
	recordatorio.CreatedAt = time.Now()
	recordatorio.UpdatedAt = time.Now()
	return r.db.Create(recordatorio).Error
}

func (r *recordatorioRepository) FindByID(id uint) (*domain.Recordatorio, error) {
	var recordatorio domain.Recordatorio
	err := r.db.Where("id = ?", id).First(&recordatorio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recordatorio, nil
}

func (r *recordatorioRepository) FindAll() ([]domain.Recordatorio, error) {
	var recordatorios []domain.Recordatorio
	if err := r.db.Find(&recordatorios).Error; err != nil {
		return nil, err
	}
	return recordatorios, nil
}

func (r *recordatorioRepository) Update(recordatorio *domain.Recordatorio) error {
	recordatorio.UpdatedAt = time.Now()
	return r.db.Save(recordatorio).Error
}

func (r *recordatorioRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Recordatorio{}, "id = ?", id).Error
}
