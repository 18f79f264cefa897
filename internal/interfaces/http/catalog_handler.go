package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/domain/catalog"
)

// CatalogHandler expone el catálogo de productos predefinidos (solo lectura).
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// List godoc
// @Summary      Listar productos predefinidos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CatalogProduct
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products := h.catalog.Products()
	out := make([]dto.CatalogProduct, 0, len(products))
	for _, p := range products {
		out = append(out, toCatalogProduct(p))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Categorías y opciones por defecto de un producto
// @Tags         catalog
// @Produce      json
// @Param        product  path      string  true  "Nombre del producto"
// @Success      200      {object}  dto.CatalogProduct
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/catalog/{product} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	name := pathParam(c, "product")
	p, ok := h.catalog.Product(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:  "NOT_FOUND",
			Error: fmt.Sprintf("producto %q no está en el catálogo", name),
		})
	}
	return c.JSON(toCatalogProduct(p))
}

func toCatalogProduct(p catalog.ProductDef) dto.CatalogProduct {
	out := dto.CatalogProduct{
		Name:       p.Name,
		Varieties:  p.Varieties,
		Categories: make([]dto.CatalogCategory, 0, len(p.Categories)),
	}
	for _, cat := range p.Categories {
		out.Categories = append(out.Categories, dto.CatalogCategory{Name: cat.Name, Options: cat.Options})
	}
	return out
}
