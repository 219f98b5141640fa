package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// KPI es la instantánea agregada del inventario. No se persiste.
type KPI struct {
	TotalStock  int
	TotalDemand int
	Fulfillable int             // Σ min(stock, demanda)
	FillRate    decimal.Decimal // porcentaje (0–100), no dividido entre 100
}

// Aggregate reduce la colección de productos a los KPIs del tablero.
// Colección vacía o demanda total cero → FillRate = 0, sin división.
func Aggregate(products []*entity.Product) KPI {
	var k KPI
	for _, p := range products {
		if p == nil {
			continue
		}
		k.TotalStock += p.Stock
		k.TotalDemand += p.Demand
		k.Fulfillable += min(p.Stock, p.Demand)
	}
	k.FillRate = FillRate(k.Fulfillable, k.TotalDemand)
	return k
}

// FillRate = fulfillable / totalDemand * 100; 0 si totalDemand <= 0.
func FillRate(fulfillable, totalDemand int) decimal.Decimal {
	if totalDemand <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(fulfillable)).Mul(hundred).Div(decimal.NewFromInt(int64(totalDemand)))
}

// StatusCounts cuenta los productos por estado derivado.
func StatusCounts(products []*entity.Product) map[Status]int {
	counts := map[Status]int{StatusHealthy: 0, StatusLow: 0, StatusCritical: 0}
	for _, p := range products {
		if p == nil {
			continue
		}
		counts[Classify(p.Stock, p.Demand)]++
	}
	return counts
}
