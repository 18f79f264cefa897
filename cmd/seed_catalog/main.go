// seed_catalog genera internal/domain/catalog/catalog.yaml a partir de un CSV
// con columnas product,category,option[,parent]. parent agrupa el producto
// como variedad de otro (ej. Clove Buds → Cloves).
//
// Uso: go run ./cmd/seed_catalog [-latin1] [ruta/catalog.csv]
// Por defecto busca catalog.csv en el directorio actual. -latin1 decodifica
// archivos exportados desde Excel en ISO-8859-1.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/internal/domain/entity"
)

type catalogFile struct {
	Products []catalog.ProductDef `yaml:"products"`
}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	csvPath := "catalog.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var in io.Reader = f
	if *latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	doc, err := build(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	data, err := render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar YAML: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "domain", "catalog", "catalog.yaml")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir archivo: %v\n", err)
		os.Exit(1)
	}

	categories := 0
	for _, p := range doc.Products {
		categories += len(p.Categories)
	}
	fmt.Printf("Generado %s: %d productos, %d categorías\n", outPath, len(doc.Products), categories)
}

// build agrupa las filas conservando el orden de aparición de productos,
// categorías y opciones.
func build(r io.Reader) (catalogFile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var doc catalogFile
	productIdx := map[string]int{}
	categoryIdx := map[string]map[string]int{}
	varieties := map[string][]string{}
	var parents []string

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return doc, err
		}
		if line == 1 {
			// Excel antepone BOM al guardar CSV UTF-8.
			rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "product") {
			continue
		}
		if len(rec) < 2 {
			return doc, fmt.Errorf("línea %d: se esperan al menos product,category", line)
		}
		product := entity.NormalizeName(rec[0])
		category := entity.NormalizeName(rec[1])
		if product == "" || category == "" {
			return doc, fmt.Errorf("línea %d: product y category son requeridos", line)
		}

		pi, ok := productIdx[product]
		if !ok {
			pi = len(doc.Products)
			productIdx[product] = pi
			categoryIdx[product] = map[string]int{}
			doc.Products = append(doc.Products, catalog.ProductDef{Name: product})
			if len(rec) > 3 {
				if parent := entity.NormalizeName(rec[3]); parent != "" && parent != product {
					if _, seen := varieties[parent]; !seen {
						parents = append(parents, parent)
					}
					varieties[parent] = append(varieties[parent], product)
				}
			}
		}
		ci, ok := categoryIdx[product][category]
		if !ok {
			ci = len(doc.Products[pi].Categories)
			categoryIdx[product][category] = ci
			doc.Products[pi].Categories = append(doc.Products[pi].Categories, catalog.CategoryDef{Name: category, Options: []string{}})
		}
		if len(rec) > 2 {
			if option := entity.NormalizeName(rec[2]); option != "" {
				cat := &doc.Products[pi].Categories[ci]
				set := entity.NewValueSet(cat.Options...)
				if set.Add(option) {
					cat.Options = set.Values()
				}
			}
		}
	}

	for _, parent := range parents {
		pi, ok := productIdx[parent]
		if !ok {
			return doc, fmt.Errorf("producto padre %q no tiene filas propias", parent)
		}
		doc.Products[pi].Varieties = varieties[parent]
	}
	return doc, nil
}

// render serializa a YAML y valida que el catálogo resultante cargue.
func render(doc catalogFile) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# Catálogo de productos predefinidos: categorías y opciones por defecto.\n")
	buf.WriteString("# Regenerar con: go run ./cmd/seed_catalog catalog.csv\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	if _, err := catalog.Load(bytes.NewReader(buf.Bytes())); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
