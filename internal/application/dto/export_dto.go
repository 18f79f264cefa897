package dto

import "encoding/json"

// ExportRequest entrada del export. CompanyData es el snapshot que guarda el
// cliente; se usa solo si el servidor perdió la empresa (reinicio).
type ExportRequest struct {
	CompanyName string          `json:"companyName"`
	CompanyData json.RawMessage `json:"companyData,omitempty" swaggertype:"object"`
}

// ExportResponse resultado del export a disco (y a Google Sheets si está habilitado).
type ExportResponse struct {
	Success          bool   `json:"success"`
	JSONFilePath     string `json:"jsonFilePath"`
	JSONFileName     string `json:"jsonFileName"`
	WorkbookFileName string `json:"workbookFileName,omitempty"`
	SheetURL         string `json:"sheetUrl,omitempty"`
	CompanyName      string `json:"companyName"`
	ContactPerson    string `json:"contactPerson"`
	ProductCount     int    `json:"productCount"`
	ExportTimestamp  string `json:"exportTimestamp"`
}

// CatalogProduct producto predefinido del catálogo.
type CatalogProduct struct {
	Name       string            `json:"name"`
	Varieties  []string          `json:"varieties,omitempty"`
	Categories []CatalogCategory `json:"categories"`
}

// CatalogCategory categoría predefinida con sus opciones por defecto.
type CatalogCategory struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}
