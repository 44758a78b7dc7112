package repository

import (
	"errors"
	"time"

	"agenda-backend/internal/agenda/domain"

	"gorm.io/gorm"
)

// categoriaRepository implements CategoriaRepository using GORM
type categoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository creates a new instance of categoriaRepository
func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Create(categoria *domain.Categoria) error {
	categoria.CreatedAt = time.Now()
	categoria.UpdatedAt = time.Now()
	return r.db.Create(categoria).Error
}

func (r *categoriaRepository) FindByID(id uint) (*domain.Categoria, error) {
	var categoria domain.Categoria
	err := r.db.Where("id = ?", id).First(&categoria).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &categoria, nil
}

func (r *categoriaRepository) FindAll() ([]domain.Categoria, error) {
	var categorias []domain.Categoria
	if err := r.db.Find(&categorias).Error; err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *categoriaRepository) Update(categoria *domain.Categoria) error {
	categoria.UpdatedAt = time.Now()
	return r.db.Save(categoria).Error
}

func (r *categoriaRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Categoria{}, "id = ?", id).Error
}
