package dto

import "time"

// CreateCompanyRequest entrada para crear el espacio de trabajo de una empresa.
type CreateCompanyRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
}

// CreateCompanyResponse salida de la creación.
type CreateCompanyResponse struct {
	Success       bool   `json:"success"`
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
}

// AddProductRequest entrada para agregar un producto.
type AddProductRequest struct {
	CompanyName string `json:"companyName"`
	ProductName string `json:"productName"`
}

// AddProductResponse salida de agregar un producto.
type AddProductResponse struct {
	Success     bool   `json:"success"`
	ProductName string `json:"productName"`
}

// AddCategoryRequest entrada para agregar una categoría a un producto.
type AddCategoryRequest struct {
	CompanyName  string `json:"companyName"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
}

// AddCategoryResponse salida con las opciones sembradas desde el catálogo.
type AddCategoryResponse struct {
	Success      bool     `json:"success"`
	CategoryName string   `json:"categoryName"`
	Options      []string `json:"options"`
}

// AddOptionRequest entrada para agregar una opción personalizada.
type AddOptionRequest struct {
	CompanyName  string `json:"companyName"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
	Option       string `json:"option"`
}

// AddOptionResponse salida; Added es false si la opción ya existía.
type AddOptionResponse struct {
	Success bool     `json:"success"`
	Options []string `json:"options"`
	Added   bool     `json:"added"`
}

// SelectValueRequest entrada para alternar la selección de un valor.
type SelectValueRequest struct {
	CompanyName  string `json:"companyName"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
	Value        string `json:"value"`
}

// SelectValueResponse salida; Selected indica si el valor quedó seleccionado.
type SelectValueResponse struct {
	Success        bool     `json:"success"`
	SelectedValues []string `json:"selectedValues"`
	Options        []string `json:"options"`
	Selected       bool     `json:"selected"`
}

// CategoryResponse categoría con sus opciones y selección.
type CategoryResponse struct {
	Options        []string `json:"options"`
	SelectedValues []string `json:"selectedValues"`
}

// ProductResponse producto con sus categorías.
type ProductResponse struct {
	Categories map[string]CategoryResponse `json:"categories"`
}

// CompanyResponse árbol completo de una empresa.
type CompanyResponse struct {
	ID            string                     `json:"id"`
	CompanyName   string                     `json:"companyName"`
	ContactPerson string                     `json:"contactPerson"`
	Products      map[string]ProductResponse `json:"products"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

// CompanySummary resumen para listados.
type CompanySummary struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"companyName"`
	ContactPerson string    `json:"contactPerson"`
	ProductCount  int       `json:"productCount"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CompanyListResponse lista de empresas.
type CompanyListResponse struct {
	Items []CompanySummary `json:"items"`
	Total int              `json:"total"`
}
