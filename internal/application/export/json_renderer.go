package export

import (
	"context"
	"encoding/json"
)

// JSONRenderer documento JSON con sangría de dos espacios.
type JSONRenderer struct{}

func (JSONRenderer) Format() string      { return "json" }
func (JSONRenderer) Extension() string   { return ".json" }
func (JSONRenderer) ContentType() string { return "application/json" }

func (JSONRenderer) Render(_ context.Context, doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
