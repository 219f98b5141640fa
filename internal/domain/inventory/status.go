package inventory

import (
	"strings"

	"github.com/jhoicas/Inventario-visibility/internal/domain"
)

// Status es la etiqueta de salud derivada de (stock, demanda).
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"
)

// statusAll es el valor de filtro que desactiva el filtro por estado.
const statusAll = "all"

// Classify deriva el estado de un producto (servicio de dominio, función pura).
//
//	stock > demanda  → healthy
//	stock == demanda → low
//	stock < demanda  → critical
func Classify(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// ParseStatusFilter interpreta el parámetro "status" de las consultas.
// Vacío o "all" devuelve nil (sin filtro); acepta mayúsculas/minúsculas.
func ParseStatusFilter(s string) (*Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == statusAll {
		return nil, nil
	}
	st := Status(v)
	switch st {
	case StatusHealthy, StatusLow, StatusCritical:
		return &st, nil
	}
	return nil, domain.ErrInvalidInput
}
