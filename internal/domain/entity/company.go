package entity

import (
	"sort"
	"time"
)

// Category agrupa las opciones permitidas de un atributo de producto (ej. "Color")
// y el subconjunto seleccionado. Invariante: SelectedValues ⊆ Options.
type Category struct {
	Options        ValueSet `json:"options"`
	SelectedValues ValueSet `json:"selectedValues"`
}

// NewCategory crea una categoría con las opciones dadas y sin selección.
func NewCategory(options ...string) *Category {
	return &Category{Options: NewValueSet(options...)}
}

// AddOption agrega una opción personalizada. No-op si ya existe.
func (c *Category) AddOption(v string) bool {
	return c.Options.Add(v)
}

// ToggleValue invierte la selección de v. Si v no está entre las opciones se
// agrega primero (opción personalizada implícita).
func (c *Category) ToggleValue(v string) (selected, optionAdded bool) {
	optionAdded = c.Options.Add(v)
	selected = c.SelectedValues.Toggle(v)
	return selected, optionAdded
}

// Normalize restablece SelectedValues ⊆ Options agregando a Options los valores
// seleccionados que falten (datos restaurados desde el cliente).
func (c *Category) Normalize() {
	for _, v := range c.SelectedValues.Values() {
		c.Options.Add(v)
	}
}

// Clone copia profunda.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	return &Category{Options: c.Options.Clone(), SelectedValues: c.SelectedValues.Clone()}
}

// Product categorías configuradas para un producto, indexadas por nombre.
type Product struct {
	Categories map[string]*Category `json:"categories"`
}

// NewProduct crea un producto sin categorías.
func NewProduct() *Product {
	return &Product{Categories: map[string]*Category{}}
}

// CategoryNames nombres de categoría ordenados alfabéticamente.
func (p *Product) CategoryNames() []string {
	return sortedKeys(p.Categories)
}

// Clone copia profunda.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	out := &Product{Categories: make(map[string]*Category, len(p.Categories))}
	for name, cat := range p.Categories {
		out.Categories[name] = cat.Clone()
	}
	return out
}

// Company espacio de trabajo de una empresa: raíz del árbol
// empresa → producto → categoría.
type Company struct {
	ID            string              `json:"id"`          // nombre normalizado (minúsculas, sin espacios extremos)
	DisplayName   string              `json:"companyName"` // nombre tal como se registró
	ContactPerson string              `json:"contactPerson"`
	Products      map[string]*Product `json:"products"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// NewCompany crea una empresa sin productos. El ID se normaliza a partir de name.
func NewCompany(name, contactPerson string, now time.Time) *Company {
	return &Company{
		ID:            NormalizeCompanyID(name),
		DisplayName:   NormalizeName(name),
		ContactPerson: NormalizeName(contactPerson),
		Products:      map[string]*Product{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProductNames nombres de producto ordenados alfabéticamente.
func (c *Company) ProductNames() []string {
	return sortedKeys(c.Products)
}

// Normalize repara un registro recibido de fuera (cliente o backend): mapas nil,
// ID sin normalizar e invariante de selección por categoría.
func (c *Company) Normalize() {
	if c.ID == "" {
		c.ID = c.DisplayName
	}
	c.ID = NormalizeCompanyID(c.ID)
	if c.DisplayName == "" {
		c.DisplayName = c.ID
	}
	if c.Products == nil {
		c.Products = map[string]*Product{}
	}
	for name, p := range c.Products {
		if p == nil {
			p = NewProduct()
			c.Products[name] = p
		}
		if p.Categories == nil {
			p.Categories = map[string]*Category{}
		}
		for catName, cat := range p.Categories {
			if cat == nil {
				cat = NewCategory()
				p.Categories[catName] = cat
			}
			cat.Normalize()
		}
	}
}

// Clone copia profunda; los backends guardan y devuelven copias.
func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	out := *c
	out.Products = make(map[string]*Product, len(c.Products))
	for name, p := range c.Products {
		out.Products[name] = p.Clone()
	}
	return &out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
