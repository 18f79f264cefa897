// Package xmlexport serializa el export de una empresa como XML.
//
//	<companyExport companyName=".." contactPerson=".." exportDate=".." productCount="N">
//	  <product name=".." categoryCount="N" totalOptions="N" totalSelectedValues="N">
//	    <category name="..">
//	      <option selected="true">Red</option>
//	    </category>
//	  </product>
//	</companyExport>
package xmlexport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/tradyon/schema-api/internal/application/export"
)

// Asegura que Renderer implementa export.Renderer.
var _ export.Renderer = (*Renderer)(nil)

// Renderer export XML construido con etree.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) Format() string      { return "xml" }
func (r *Renderer) Extension() string   { return ".xml" }
func (r *Renderer) ContentType() string { return "application/xml" }

// Render productos y categorías en orden alfabético; las opciones en su orden
// de inserción, marcando las seleccionadas.
func (r *Renderer) Render(_ context.Context, doc export.Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("companyExport")
	root.CreateAttr("companyName", doc.CompanyName)
	root.CreateAttr("contactPerson", doc.ContactPerson)
	root.CreateAttr("exportDate", doc.ExportDate)
	root.CreateAttr("productCount", strconv.Itoa(doc.ProductCount))

	for _, name := range doc.ProductNames() {
		p := doc.Products[name]
		pe := root.CreateElement("product")
		pe.CreateAttr("name", name)
		pe.CreateAttr("categoryCount", strconv.Itoa(p.CategoryCount))
		pe.CreateAttr("totalOptions", strconv.Itoa(p.TotalOptions))
		pe.CreateAttr("totalSelectedValues", strconv.Itoa(p.TotalSelectedValues))

		for _, catName := range p.CategoryNames() {
			cat := p.Categories[catName]
			selected := make(map[string]bool, len(cat.SelectedValues))
			for _, v := range cat.SelectedValues {
				selected[v] = true
			}
			ce := pe.CreateElement("category")
			ce.CreateAttr("name", catName)
			for _, opt := range cat.Options {
				oe := ce.CreateElement("option")
				if selected[opt] {
					oe.CreateAttr("selected", "true")
				}
				oe.SetText(opt)
			}
		}
	}

	x.Indent(2)
	out, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}
