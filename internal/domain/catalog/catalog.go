// Package catalog contiene la tabla estática de productos predefinidos con sus
// categorías y opciones por defecto. Solo se consulta al crear (o recrear) una
// categoría para sembrar sus opciones.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tradyon/schema-api/internal/domain/entity"
)

//go:embed catalog.yaml
var defaultCatalog string

// CategoryDef categoría predefinida y sus opciones en orden.
type CategoryDef struct {
	Name    string   `yaml:"name" json:"name"`
	Options []string `yaml:"options" json:"options"`
}

// ProductDef producto predefinido. Varieties lista sub-productos que la UI
// presenta agrupados bajo este (ej. Cloves → Clove Buds).
type ProductDef struct {
	Name       string        `yaml:"name" json:"name"`
	Varieties  []string      `yaml:"varieties,omitempty" json:"varieties,omitempty"`
	Categories []CategoryDef `yaml:"categories" json:"categories"`
}

type document struct {
	Products []ProductDef `yaml:"products"`
}

// Catalog tabla de solo lectura producto → categoría → opciones.
type Catalog struct {
	products []ProductDef
	byName   map[string]int
}

// Load lee un catálogo en YAML. Las opciones duplicadas se descartan y los
// nombres se normalizan igual que los del árbol de empresas.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decodificar YAML: %w", err)
	}
	c := &Catalog{byName: make(map[string]int, len(doc.Products))}
	for _, p := range doc.Products {
		name := entity.NormalizeName(p.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog: producto sin nombre")
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("catalog: producto duplicado %q", name)
		}
		def := ProductDef{Name: name, Varieties: p.Varieties}
		for _, cat := range p.Categories {
			catName := entity.NormalizeName(cat.Name)
			if catName == "" {
				return nil, fmt.Errorf("catalog: categoría sin nombre en %q", name)
			}
			def.Categories = append(def.Categories, CategoryDef{
				Name:    catName,
				Options: entity.NewValueSet(cat.Options...).Values(),
			})
		}
		c.byName[name] = len(c.products)
		c.products = append(c.products, def)
	}
	return c, nil
}

// LoadFile lee el catálogo desde un archivo YAML.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default catálogo embebido en el binario.
func Default() *Catalog {
	c, err := Load(strings.NewReader(defaultCatalog))
	if err != nil {
		panic("catálogo embebido inválido: " + err.Error())
	}
	return c
}

// Products copia de los productos predefinidos en el orden del archivo.
func (c *Catalog) Products() []ProductDef {
	out := make([]ProductDef, len(c.products))
	copy(out, c.products)
	return out
}

// Product busca un producto por nombre exacto (tras recortar espacios).
func (c *Catalog) Product(name string) (ProductDef, bool) {
	i, ok := c.byName[entity.NormalizeName(name)]
	if !ok {
		return ProductDef{}, false
	}
	return c.products[i], true
}

// Categories categorías predefinidas del producto; vacío si no existe.
func (c *Catalog) Categories(product string) []CategoryDef {
	p, ok := c.Product(product)
	if !ok {
		return nil
	}
	out := make([]CategoryDef, len(p.Categories))
	copy(out, p.Categories)
	return out
}

// Options opciones por defecto de (producto, categoría). Devuelve una copia;
// slice vacío (no nil) cuando no hay entrada.
func (c *Catalog) Options(product, category string) []string {
	p, ok := c.Product(product)
	if !ok {
		return []string{}
	}
	name := entity.NormalizeName(category)
	for _, cat := range p.Categories {
		if cat.Name == name {
			out := make([]string, len(cat.Options))
			copy(out, cat.Options)
			return out
		}
	}
	return []string{}
}
