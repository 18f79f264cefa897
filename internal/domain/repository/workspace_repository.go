package repository

import (
	"context"

	"github.com/tradyon/schema-api/internal/domain/entity"
)

// WorkspaceRepository define el puerto de persistencia del árbol de cada empresa (DIP).
// Los IDs se normalizan con entity.NormalizeCompanyID dentro de cada implementación,
// de modo que "Acme" y "acme" apuntan al mismo registro.
// Las implementaciones guardan y devuelven copias: mutar el valor devuelto no
// altera el estado almacenado hasta llamar a Set o Update.
type WorkspaceRepository interface {
	// Get devuelve (nil, nil) si la empresa no existe.
	Get(ctx context.Context, id string) (*entity.Company, error)
	// Create inserta el registro solo si no existe. Devuelve false (sin
	// modificar nada) si ya había uno con el mismo ID.
	Create(ctx context.Context, company *entity.Company) (bool, error)
	// Set crea o reemplaza el registro completo (clave: company.ID).
	Set(ctx context.Context, company *entity.Company) error
	// Update aplica fn sobre una copia y la guarda. Devuelve false si no existe.
	Update(ctx context.Context, id string, fn func(*entity.Company) error) (bool, error)
	// Delete devuelve true si el registro existía.
	Delete(ctx context.Context, id string) (bool, error)
	// List devuelve todas las empresas ordenadas por ID.
	List(ctx context.Context) ([]*entity.Company, error)
	// Clear elimina todos los registros.
	Clear(ctx context.Context) error
}
