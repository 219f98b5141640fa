package inventory

import (
	"math"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
)

// DefaultRange es el rango de la gráfica cuando no se indica ninguno.
const DefaultRange = "7d"

var rangeDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// ParseRange convierte el token de rango ("7d", "14d", "30d") en número de días.
// Vacío → DefaultRange.
func ParseRange(r string) (int, error) {
	r = strings.ToLower(strings.TrimSpace(r))
	if r == "" {
		r = DefaultRange
	}
	days, ok := rangeDays[r]
	if !ok {
		return 0, domain.ErrInvalidInput
	}
	return days, nil
}

// TrendSeries genera `days` puntos diarios, el más antiguo primero y hoy al final.
// Cada punto parte de los totales actuales con una variación v ∈ [-0.1, 0.1):
// stock × (1+v) y demanda × (1+v/2). rnd debe devolver valores en [0, 1).
func TrendSeries(totalStock, totalDemand, days int, now time.Time, rnd func() float64) []entity.TrendPoint {
	if days <= 0 {
		return []entity.TrendPoint{}
	}
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	points := make([]entity.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		v := rnd()*0.2 - 0.1
		points = append(points, entity.TrendPoint{
			Date:   today.AddDate(0, 0, -i).Format(time.DateOnly),
			Stock:  int(math.Round(float64(totalStock) * (1 + v))),
			Demand: int(math.Round(float64(totalDemand) * (1 + v*0.5))),
		})
	}
	return points
}
