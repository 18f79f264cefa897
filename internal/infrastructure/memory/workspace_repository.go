// Package memory implementa el almacén de espacios de trabajo en memoria del proceso.
// El estado se pierde al reiniciar; los casos de uso recrean los nodos faltantes
// con valores por defecto.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
)

// Asegura que WorkspaceRepo implementa repository.WorkspaceRepository.
var _ repository.WorkspaceRepository = (*WorkspaceRepo)(nil)

// WorkspaceRepo mapa id normalizado → empresa. El mutex protege solo el mapa:
// una secuencia Get → Set de un caso de uso no es atómica (última escritura gana).
type WorkspaceRepo struct {
	mu        sync.RWMutex
	companies map[string]*entity.Company
}

// NewWorkspaceRepository construye un almacén vacío.
func NewWorkspaceRepository() *WorkspaceRepo {
	return &WorkspaceRepo{companies: map[string]*entity.Company{}}
}

// Get devuelve una copia de la empresa o nil si no existe.
func (r *WorkspaceRepo) Get(_ context.Context, id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.companies[entity.NormalizeCompanyID(id)]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// Create guarda una copia solo si el ID no está ocupado.
func (r *WorkspaceRepo) Create(_ context.Context, company *entity.Company) (bool, error) {
	cp := company.Clone()
	cp.ID = entity.NormalizeCompanyID(cp.ID)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[cp.ID]; ok {
		return false, nil
	}
	r.companies[cp.ID] = cp
	return true, nil
}

// Set guarda una copia del registro bajo su ID normalizado.
func (r *WorkspaceRepo) Set(_ context.Context, company *entity.Company) error {
	cp := company.Clone()
	cp.ID = entity.NormalizeCompanyID(cp.ID)
	r.mu.Lock()
	r.companies[cp.ID] = cp
	r.mu.Unlock()
	return nil
}

// Update aplica fn sobre una copia y reemplaza el registro si fn no falla.
func (r *WorkspaceRepo) Update(_ context.Context, id string, fn func(*entity.Company) error) (bool, error) {
	key := entity.NormalizeCompanyID(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.companies[key]
	if !ok {
		return false, nil
	}
	cp := current.Clone()
	if err := fn(cp); err != nil {
		return true, err
	}
	cp.ID = key
	r.companies[key] = cp
	return true, nil
}

// Delete elimina la empresa. Devuelve true si existía.
func (r *WorkspaceRepo) Delete(_ context.Context, id string) (bool, error) {
	key := entity.NormalizeCompanyID(id)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[key]; !ok {
		return false, nil
	}
	delete(r.companies, key)
	return true, nil
}

// List copias de todas las empresas ordenadas por ID.
func (r *WorkspaceRepo) List(_ context.Context) ([]*entity.Company, error) {
	r.mu.RLock()
	list := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		list = append(list, c.Clone())
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Clear vacía el almacén.
func (r *WorkspaceRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	r.companies = map[string]*entity.Company{}
	r.mu.Unlock()
	return nil
}
