package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Store   string `json:"store"`
}
