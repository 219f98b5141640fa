package dto

// Límites de paginación de la tabla de productos.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest paginación para listados. Limit = 0 devuelve todos los resultados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize acota Limit a [0, MaxPageSize] y Offset a >= 0.
func (p *PageRequest) Normalize() {
	if p.Limit < 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
