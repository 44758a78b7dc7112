package usecase

import (
	"sync"

	"agenda-backend/internal/agenda/domain"
)

// In-memory repository fakes for usecase tests.

type fakeCategoriaRepo struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]domain.Categoria
}

func newFakeCategoriaRepo() *fakeCategoriaRepo {
	return &fakeCategoriaRepo{nextID: 1, items: make(map[uint]domain.Categoria)}
}

func (r *fakeCategoriaRepo) Create(c *domain.Categoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCategoriaRepo) FindByID(id uint) (*domain.Categoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCategoriaRepo) FindAll() ([]domain.Categoria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Categoria, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoriaRepo) Update(c *domain.Categoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = *c
	return nil
}

func (r *fakeCategoriaRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeActividadRepo struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]domain.Actividad
}

func newFakeActividadRepo() *fakeActividadRepo {
	return &fakeActividadRepo{nextID: 1, items: make(map[uint]domain.Actividad)}
}

func cloneActividad(a domain.Actividad) domain.Actividad {
	out := a
	if a.FechaInicio != nil {
		v := *a.FechaInicio
		out.FechaInicio = &v
	}
	if a.FechaFin != nil {
		v := *a.FechaFin
		out.FechaFin = &v
	}
	return out
}

func (r *fakeActividadRepo) Create(a *domain.Actividad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	r.items[a.ID] = cloneActividad(*a)
	return nil
}

func (r *fakeActividadRepo) FindByID(id uint) (*domain.Actividad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	out := cloneActividad(a)
	return &out, nil
}

func (r *fakeActividadRepo) FindAll() ([]domain.Actividad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Actividad, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, cloneActividad(a))
	}
	return out, nil
}

func (r *fakeActividadRepo) Update(a *domain.Actividad) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = cloneActividad(*a)
	return nil
}

func (r *fakeActividadRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeRecordatorioRepo struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]domain.Recordatorio
}

func newFakeRecordatorioRepo() *fakeRecordatorioRepo {
	return &fakeRecordatorioRepo{nextID: 1, items: make(map[uint]domain.Recordatorio)}
}

func (r *fakeRecordatorioRepo) Create(rec *domain.Recordatorio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.items[rec.ID] = *rec
	return nil
}

func (r *fakeRecordatorioRepo) FindByID(id uint) (*domain.Recordatorio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *fakeRecordatorioRepo) FindAll() ([]domain.Recordatorio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Recordatorio, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeRecordatorioRepo) Update(rec *domain.Recordatorio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rec.ID] = *rec
	return nil
}

func (r *fakeRecordatorioRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
