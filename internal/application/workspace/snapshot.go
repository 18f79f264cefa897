package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/tradyon/schema-api/internal/domain"
	"github.com/tradyon/schema-api/internal/domain/entity"
)

// DecodeSnapshot interpreta el árbol de empresa que conserva el cliente.
// Acepta registros sin id (se deriva de companyName o del nombre pedido) y
// repara la invariante de selección. El id resultante debe coincidir con name.
func DecodeSnapshot(name string, data []byte) (*entity.Company, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, fmt.Errorf("%w: companyData vacío", domain.ErrInvalidInput)
	}
	var c entity.Company
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: companyData inválido: %v", domain.ErrInvalidInput, err)
	}
	if c.ID == "" && c.DisplayName == "" {
		c.DisplayName = entity.NormalizeName(name)
	}
	c.Normalize()
	if c.ID != entity.NormalizeCompanyID(name) {
		return nil, fmt.Errorf("%w: companyData pertenece a otra empresa (%q)", domain.ErrInvalidInput, c.ID)
	}
	return &c, nil
}
