package export

import (
	"encoding/json"
	"sort"
)

// OutputSummary resumen de un archivo JSON de la carpeta de salida.
type OutputSummary struct {
	FileName      string
	CompanyName   string
	ContactPerson string
	ProductCount  int
	ExportDate    string
	Products      []string
	Err           error
}

// Outputs lee los *.json de la carpeta de salida. Un archivo ilegible se
// reporta con Err sin interrumpir el resto.
func Outputs(files FileStore) ([]OutputSummary, error) {
	names, err := files.List(".json")
	if err != nil {
		return nil, err
	}
	out := make([]OutputSummary, 0, len(names))
	for _, name := range names {
		s := OutputSummary{FileName: name}
		data, err := files.ReadFile(name)
		if err != nil {
			s.Err = err
			out = append(out, s)
			continue
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			s.Err = err
			out = append(out, s)
			continue
		}
		s.CompanyName = doc.CompanyName
		s.ContactPerson = doc.ContactPerson
		s.ProductCount = doc.ProductCount
		s.ExportDate = doc.ExportDate
		s.Products = doc.ProductNames()
		out = append(out, s)
	}
	return out, nil
}

func sortStrings(s []string) []string {
	sort.Strings(s)
	return s
}
