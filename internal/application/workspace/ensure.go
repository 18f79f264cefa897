package workspace

import (
	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/internal/domain/entity"
)

// Recovery indica qué niveles del árbol tuvieron que recrearse porque faltaban
// (típicamente tras un reinicio del proceso con el backend en memoria).
type Recovery struct {
	Company  bool
	Product  bool
	Category bool
}

// Any true si se recreó al menos un nivel.
func (r Recovery) Any() bool {
	return r.Company || r.Product || r.Category
}

// EnsureProduct devuelve el producto, creándolo vacío si no existe.
func EnsureProduct(c *entity.Company, product string) (*entity.Product, bool) {
	if p, ok := c.Products[product]; ok && p != nil {
		return p, false
	}
	p := entity.NewProduct()
	c.Products[product] = p
	return p, true
}

// EnsureCategory devuelve la categoría, recreando producto y categoría si
// faltan. Una categoría nueva se siembra con las opciones del catálogo para
// (producto, categoría), o vacía si no hay entrada.
func EnsureCategory(c *entity.Company, product, category string, cat *catalog.Catalog) (*entity.Category, Recovery) {
	var rec Recovery
	p, created := EnsureProduct(c, product)
	rec.Product = created
	if existing, ok := p.Categories[category]; ok && existing != nil {
		return existing, rec
	}
	nc := entity.NewCategory(cat.Options(product, category)...)
	p.Categories[category] = nc
	rec.Category = true
	return nc, rec
}
