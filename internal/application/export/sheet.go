package export

import (
	"fmt"
	"strings"
)

// SheetHeader primera fila de cada hoja de producto.
var SheetHeader = []string{"Category", "Selected Values", "Available Options"}

// NotSelected texto de la columna de selección cuando no hay valores elegidos.
const NotSelected = "Not selected"

// maxSheetTitle límite de caracteres de un nombre de hoja (Excel y Google Sheets).
const maxSheetTitle = 31

// SheetRows filas de la hoja de un producto: encabezado y una fila por
// categoría en orden alfabético. Un producto sin categorías produce solo su nombre.
func SheetRows(productName string, p ProductDocument) [][]string {
	names := p.CategoryNames()
	if len(names) == 0 {
		return [][]string{{productName}}
	}
	rows := make([][]string, 0, len(names)+1)
	rows = append(rows, append([]string(nil), SheetHeader...))
	for _, name := range names {
		cat := p.Categories[name]
		selected := NotSelected
		if len(cat.SelectedValues) > 0 {
			selected = strings.Join(cat.SelectedValues, ", ")
		}
		rows = append(rows, []string{name, selected, strings.Join(cat.Options, ", ")})
	}
	return rows
}

// SheetTitles convierte nombres de producto en títulos de hoja válidos y únicos,
// conservando el orden de entrada.
func SheetTitles(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		base := sanitizeTitle(name)
		title := base
		for n := 2; used[strings.ToLower(title)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			title = truncateRunes(base, maxSheetTitle-len(suffix)) + suffix
		}
		used[strings.ToLower(title)] = true
		out[i] = title
	}
	return out
}

func sanitizeTitle(name string) string {
	t := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	t = strings.Trim(truncateRunes(t, maxSheetTitle), "'")
	if t == "" {
		t = "Sheet"
	}
	return t
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
