// Package export genera la representación exportable de una empresa (JSON,
// hojas por producto) y coordina su escritura en disco y en Google Sheets.
package export

import (
	"sort"
	"time"

	"github.com/tradyon/schema-api/internal/domain/entity"
)

// ContactPlaceholder texto cuando la empresa no tiene persona de contacto.
const ContactPlaceholder = "Not provided"

// Document forma canónica del export: incluye opciones completas y selección
// de cada categoría.
type Document struct {
	CompanyName   string                     `json:"companyName"`
	ContactPerson string                     `json:"contactPerson"`
	ExportDate    string                     `json:"exportDate"`
	ProductCount  int                        `json:"productCount"`
	Products      map[string]ProductDocument `json:"products"`
}

// ProductDocument producto exportado con sus totales.
type ProductDocument struct {
	Categories          map[string]CategoryDocument `json:"categories"`
	CategoryCount       int                         `json:"categoryCount"`
	TotalOptions        int                         `json:"totalOptions"`
	TotalSelectedValues int                         `json:"totalSelectedValues"`
}

// CategoryDocument categoría exportada.
type CategoryDocument struct {
	Options        []string `json:"options"`
	SelectedValues []string `json:"selectedValues"`
}

// BuildDocument arma el documento a partir del registro. No modifica company.
func BuildDocument(company *entity.Company, now time.Time) Document {
	contact := company.ContactPerson
	if contact == "" {
		contact = ContactPlaceholder
	}
	doc := Document{
		CompanyName:   company.DisplayName,
		ContactPerson: contact,
		ExportDate:    now.UTC().Format(time.RFC3339),
		ProductCount:  len(company.Products),
		Products:      make(map[string]ProductDocument, len(company.Products)),
	}
	for name, p := range company.Products {
		pd := ProductDocument{Categories: make(map[string]CategoryDocument, len(p.Categories))}
		for catName, cat := range p.Categories {
			cd := CategoryDocument{
				Options:        cat.Options.Values(),
				SelectedValues: cat.SelectedValues.Values(),
			}
			pd.Categories[catName] = cd
			pd.TotalOptions += len(cd.Options)
			pd.TotalSelectedValues += len(cd.SelectedValues)
		}
		pd.CategoryCount = len(pd.Categories)
		doc.Products[name] = pd
	}
	return doc
}

// ProductNames nombres de producto en orden alfabético.
func (d Document) ProductNames() []string {
	names := make([]string, 0, len(d.Products))
	for name := range d.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryNames nombres de categoría en orden alfabético.
func (p ProductDocument) CategoryNames() []string {
	names := make([]string, 0, len(p.Categories))
	for name := range p.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
