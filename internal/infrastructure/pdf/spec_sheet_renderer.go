// Package pdf genera la ficha de especificaciones de una empresa en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + Contacto   │  Fecha de export             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por producto:                                               │
//	│    TÍTULO: Producto (N categorías)                           │
//	│    TABLA: Categoría | Seleccionados | Opciones disponibles   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / categorías / valores seleccionados     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tradyon/schema-api/internal/application/export"
)

// Asegura que SpecSheetRenderer implementa export.Renderer.
var _ export.Renderer = (*SpecSheetRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 51, Green: 153, Blue: 230}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// SpecSheetRenderer implementa export.Renderer usando Maroto v2.
type SpecSheetRenderer struct{}

// NewSpecSheetRenderer construye el renderer.
func NewSpecSheetRenderer() *SpecSheetRenderer { return &SpecSheetRenderer{} }

func (g *SpecSheetRenderer) Format() string      { return "pdf" }
func (g *SpecSheetRenderer) Extension() string   { return ".pdf" }
func (g *SpecSheetRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *SpecSheetRenderer) Render(_ context.Context, doc export.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.CompanyName+" - Product Specifications", true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	selected := 0
	categories := 0
	for _, name := range doc.ProductNames() {
		p := doc.Products[name]
		categories += p.CategoryCount
		selected += p.TotalSelectedValues

		m.AddRows(productTitleRow(name, p))
		rows := export.SheetRows(name, p)
		if len(rows) > 1 {
			m.AddRows(tableHeaderRow())
			for _, r := range rows[1:] {
				m.AddRows(categoryRow(r))
			}
		}
		m.AddRows(line.NewRow(3))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(doc.ProductCount, categories, selected))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + contacto (izq) y fecha de export (der).
func headerRow(doc export.Document) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Contacto: "+doc.ContactPerson, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("FICHA DE ESPECIFICACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+formatDate(doc.ExportDate), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// productTitleRow: nombre del producto y cantidad de categorías.
func productTitleRow(name string, p export.ProductDocument) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New(name, props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2,
		})),
		col.New(4).Add(text.New(fmt.Sprintf("%d categorías", p.CategoryCount), props.Text{
			Size: 8, Align: align.Right, Top: 3, Color: colorGray,
		})),
	)
}

// tableHeaderRow: cabecera de la tabla de categorías.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(export.SheetHeader[0], 3),
		h(export.SheetHeader[1], 4),
		h(export.SheetHeader[2], 5),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// categoryRow: una fila [categoría, seleccionados, opciones].
func categoryRow(r []string) core.Row {
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(r[0], 3),
		cell(r[1], 4),
		cell(r[2], 5),
	)
}

// summaryRow: totales del export.
func summaryRow(products, categories, selected int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Productos: %d   |   Categorías: %d   |   Valores seleccionados: %d",
			products, categories, selected), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func formatDate(rfc3339 string) string {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Format("02/01/2006 15:04 MST")
}
