// Package xlsx genera el libro Excel del export: una hoja por producto.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tradyon/schema-api/internal/application/export"
)

// Asegura que WorkbookRenderer implementa export.Renderer.
var _ export.Renderer = (*WorkbookRenderer)(nil)

const defaultSheet = "Sheet1"

// WorkbookRenderer renderer xlsx basado en excelize.
type WorkbookRenderer struct{}

// NewWorkbookRenderer construye el renderer.
func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

func (r *WorkbookRenderer) Format() string    { return "xlsx" }
func (r *WorkbookRenderer) Extension() string { return ".xlsx" }
func (r *WorkbookRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render crea una hoja por producto (orden alfabético) con encabezado resaltado.
func (r *WorkbookRenderer) Render(_ context.Context, doc export.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3399E6"}},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de encabezado: %w", err)
	}

	names := doc.ProductNames()
	titles := export.SheetTitles(names)
	for i, name := range names {
		title := titles[i]
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, title); err != nil {
				return nil, fmt.Errorf("renombrar hoja: %w", err)
			}
		} else if _, err := f.NewSheet(title); err != nil {
			return nil, fmt.Errorf("crear hoja %q: %w", title, err)
		}

		rows := export.SheetRows(name, doc.Products[name])
		for j, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, j+1)
			if err != nil {
				return nil, err
			}
			values := make([]interface{}, len(row))
			for k, v := range row {
				values[k] = v
			}
			if err := f.SetSheetRow(title, cell, &values); err != nil {
				return nil, fmt.Errorf("escribir fila %d de %q: %w", j+1, title, err)
			}
		}
		if len(rows) > 1 {
			if err := f.SetCellStyle(title, "A1", "C1", headerStyle); err != nil {
				return nil, err
			}
			if err := f.SetColWidth(title, "A", "A", 24); err != nil {
				return nil, err
			}
			if err := f.SetColWidth(title, "B", "C", 48); err != nil {
				return nil, err
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
