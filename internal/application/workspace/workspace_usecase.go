// Package workspace implementa las operaciones de alta e inserción idempotente
// sobre el árbol empresa → producto → categoría.
package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/domain"
	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/internal/domain/entity"
	"github.com/tradyon/schema-api/internal/domain/repository"
	"github.com/tradyon/schema-api/pkg/logger"
)

// WorkspaceUseCase aplica las reglas del espacio de trabajo de cada empresa.
type WorkspaceUseCase struct {
	repo    repository.WorkspaceRepository
	catalog *catalog.Catalog
	log     *logger.Logger
	now     func() time.Time
}

// NewWorkspaceUseCase construye el caso de uso con el store, el catálogo y el logger.
func NewWorkspaceUseCase(repo repository.WorkspaceRepository, cat *catalog.Catalog, log *logger.Logger) *WorkspaceUseCase {
	return &WorkspaceUseCase{repo: repo, catalog: cat, log: log, now: time.Now}
}

// CreateCompany crea una empresa sin productos. domain.ErrConflict si ya existe
// (comparación sin distinguir mayúsculas).
func (uc *WorkspaceUseCase) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CreateCompanyResponse, error) {
	if err := required("companyName", in.CompanyName, "contactPerson", in.ContactPerson); err != nil {
		return nil, err
	}
	company := entity.NewCompany(in.CompanyName, in.ContactPerson, uc.now())
	created, err := uc.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	if !created {
		name := company.DisplayName
		if existing, err := uc.repo.Get(ctx, in.CompanyName); err == nil && existing != nil {
			name = existing.DisplayName
		}
		return nil, fmt.Errorf("%w: la empresa %q ya existe", domain.ErrConflict, name)
	}
	uc.log.Info().Str("company", company.ID).Msg("empresa creada")
	return &dto.CreateCompanyResponse{
		Success:       true,
		CompanyName:   company.DisplayName,
		ContactPerson: company.ContactPerson,
	}, nil
}

// AddProduct agrega un producto vacío. Si la empresa no existe se recrea;
// domain.ErrConflict si el producto ya existe.
func (uc *WorkspaceUseCase) AddProduct(ctx context.Context, in dto.AddProductRequest) (*dto.AddProductResponse, error) {
	if err := required("companyName", in.CompanyName, "productName", in.ProductName); err != nil {
		return nil, err
	}
	product := entity.NormalizeName(in.ProductName)
	err := uc.mutate(ctx, in.CompanyName, func(c *entity.Company, rec *Recovery) error {
		if _, ok := c.Products[product]; ok {
			return fmt.Errorf("%w: el producto %q ya existe", domain.ErrConflict, product)
		}
		c.Products[product] = entity.NewProduct()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AddProductResponse{Success: true, ProductName: product}, nil
}

// AddCategory agrega una categoría sembrada desde el catálogo. Recrea empresa y
// producto si faltan; domain.ErrConflict si la categoría ya existe.
func (uc *WorkspaceUseCase) AddCategory(ctx context.Context, in dto.AddCategoryRequest) (*dto.AddCategoryResponse, error) {
	if err := required("companyName", in.CompanyName, "productName", in.ProductName, "categoryName", in.CategoryName); err != nil {
		return nil, err
	}
	product := entity.NormalizeName(in.ProductName)
	category := entity.NormalizeName(in.CategoryName)
	var options []string
	err := uc.mutate(ctx, in.CompanyName, func(c *entity.Company, rec *Recovery) error {
		p, created := EnsureProduct(c, product)
		rec.Product = created
		if _, ok := p.Categories[category]; ok {
			return fmt.Errorf("%w: la categoría %q ya existe en %q", domain.ErrConflict, category, product)
		}
		cat := entity.NewCategory(uc.catalog.Options(product, category)...)
		p.Categories[category] = cat
		options = cat.Options.Values()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.AddCategoryResponse{Success: true, CategoryName: category, Options: options}, nil
}

// AddOption agrega una opción personalizada; no-op si ya existe.
func (uc *WorkspaceUseCase) AddOption(ctx context.Context, in dto.AddOptionRequest) (*dto.AddOptionResponse, error) {
	if err := required("companyName", in.CompanyName, "productName", in.ProductName,
		"categoryName", in.CategoryName, "option", in.Option); err != nil {
		return nil, err
	}
	product := entity.NormalizeName(in.ProductName)
	category := entity.NormalizeName(in.CategoryName)
	option := entity.NormalizeName(in.Option)
	out := &dto.AddOptionResponse{Success: true}
	err := uc.mutate(ctx, in.CompanyName, func(c *entity.Company, rec *Recovery) error {
		cat, r := EnsureCategory(c, product, category, uc.catalog)
		rec.Product, rec.Category = r.Product, r.Category
		out.Added = cat.AddOption(option)
		out.Options = cat.Options.Values()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SelectValue alterna la selección de un valor. Un valor desconocido se agrega
// antes a las opciones.
func (uc *WorkspaceUseCase) SelectValue(ctx context.Context, in dto.SelectValueRequest) (*dto.SelectValueResponse, error) {
	if err := required("companyName", in.CompanyName, "productName", in.ProductName,
		"categoryName", in.CategoryName, "value", in.Value); err != nil {
		return nil, err
	}
	product := entity.NormalizeName(in.ProductName)
	category := entity.NormalizeName(in.CategoryName)
	value := entity.NormalizeName(in.Value)
	out := &dto.SelectValueResponse{Success: true}
	err := uc.mutate(ctx, in.CompanyName, func(c *entity.Company, rec *Recovery) error {
		cat, r := EnsureCategory(c, product, category, uc.catalog)
		rec.Product, rec.Category = r.Product, r.Category
		out.Selected, _ = cat.ToggleValue(value)
		out.SelectedValues = cat.SelectedValues.Values()
		out.Options = cat.Options.Values()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCompany devuelve el árbol completo; domain.ErrNotFound si no existe.
func (uc *WorkspaceUseCase) GetCompany(ctx context.Context, name string) (*dto.CompanyResponse, error) {
	c, err := uc.Snapshot(ctx, name)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(c), nil
}

// Snapshot copia del registro de la empresa; domain.ErrNotFound si no existe.
func (uc *WorkspaceUseCase) Snapshot(ctx context.Context, name string) (*entity.Company, error) {
	if err := required("companyName", name); err != nil {
		return nil, err
	}
	c, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: empresa %q", domain.ErrNotFound, strings.TrimSpace(name))
	}
	return c, nil
}

// ListCompanies resumen de todas las empresas, ordenadas por id.
func (uc *WorkspaceUseCase) ListCompanies(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{
			ID:            c.ID,
			CompanyName:   c.DisplayName,
			ContactPerson: c.ContactPerson,
			ProductCount:  len(c.Products),
			UpdatedAt:     c.UpdatedAt,
		})
	}
	return &dto.CompanyListResponse{Items: items, Total: len(items)}, nil
}

// DeleteCompany elimina la empresa; domain.ErrNotFound si no existía.
func (uc *WorkspaceUseCase) DeleteCompany(ctx context.Context, name string) error {
	if err := required("companyName", name); err != nil {
		return err
	}
	ok, err := uc.repo.Delete(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: empresa %q", domain.ErrNotFound, strings.TrimSpace(name))
	}
	uc.log.Info().Str("company", entity.NormalizeCompanyID(name)).Msg("empresa eliminada")
	return nil
}

// RestoreCompany instala el snapshot enviado por el cliente cuando el servidor
// ya no tiene la empresa. Si existe, se conserva la versión del servidor.
func (uc *WorkspaceUseCase) RestoreCompany(ctx context.Context, name string, data []byte) (*entity.Company, error) {
	if err := required("companyName", name); err != nil {
		return nil, err
	}
	existing, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	c, err := DecodeSnapshot(name, data)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	created, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	if !created {
		// otra petición la creó entre la lectura y la inserción
		return uc.Snapshot(ctx, name)
	}
	uc.log.Info().Str("company", c.ID).Int("products", len(c.Products)).Msg("empresa restaurada desde el cliente")
	return c, nil
}

// mutate asegura que la empresa exista (recreándola vacía si falta, sin pisar
// un registro existente) y aplica fn dentro de repo.Update. Registra en el log
// los niveles recreados.
func (uc *WorkspaceUseCase) mutate(ctx context.Context, name string, fn func(*entity.Company, *Recovery) error) error {
	var rec Recovery
	created, err := uc.repo.Create(ctx, entity.NewCompany(name, "", uc.now()))
	if err != nil {
		return err
	}
	rec.Company = created
	found, err := uc.repo.Update(ctx, name, func(c *entity.Company) error {
		if err := fn(c, &rec); err != nil {
			return err
		}
		c.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		// eliminada entre la recreación y la actualización
		return fmt.Errorf("%w: empresa %q", domain.ErrNotFound, strings.TrimSpace(name))
	}
	if rec.Any() {
		uc.log.Info().
			Str("company", entity.NormalizeCompanyID(name)).
			Bool("company_recreated", rec.Company).
			Bool("product_recreated", rec.Product).
			Bool("category_recreated", rec.Category).
			Msg("subárbol recreado con valores por defecto")
	}
	return nil
}

// required valida pares (campo, valor): cada valor debe tener contenido tras recortar espacios.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, pairs[i])
		}
	}
	return nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	out := &dto.CompanyResponse{
		ID:            c.ID,
		CompanyName:   c.DisplayName,
		ContactPerson: c.ContactPerson,
		Products:      make(map[string]dto.ProductResponse, len(c.Products)),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	for name, p := range c.Products {
		pr := dto.ProductResponse{Categories: make(map[string]dto.CategoryResponse, len(p.Categories))}
		for catName, cat := range p.Categories {
			pr.Categories[catName] = dto.CategoryResponse{
				Options:        cat.Options.Values(),
				SelectedValues: cat.SelectedValues.Values(),
			}
		}
		out.Products[name] = pr
	}
	return out
}
