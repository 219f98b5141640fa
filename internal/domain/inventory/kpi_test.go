package inventory_test

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
)

func products(pairs ...[2]int) []*entity.Product {
	out := make([]*entity.Product, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &entity.Product{Stock: p[0], Demand: p[1]})
	}
	return out
}

// cubrible = min(180,120) + min(50,80) = 170; fill rate = 170/200 = 85%.
func TestAggregate_EscenarioDosProductos(t *testing.T) {
	k := inventory.Aggregate(products([2]int{180, 120}, [2]int{50, 80}))

	assert.Equal(t, 230, k.TotalStock)
	assert.Equal(t, 200, k.TotalDemand)
	assert.Equal(t, 170, k.Fulfillable)
	assert.True(t, k.FillRate.Equal(decimal.NewFromInt(85)), "fill rate = %s", k.FillRate)
}

func TestAggregate_ListaVaciaDevuelveCeros(t *testing.T) {
	for _, in := range [][]*entity.Product{nil, {}} {
		k := inventory.Aggregate(in)
		assert.Zero(t, k.TotalStock)
		assert.Zero(t, k.TotalDemand)
		assert.True(t, k.FillRate.IsZero())
	}
}

func TestAggregate_DemandaCeroNoDivide(t *testing.T) {
	k := inventory.Aggregate(products([2]int{10, 0}, [2]int{5, 0}))
	assert.Equal(t, 15, k.TotalStock)
	assert.True(t, k.FillRate.IsZero())
}

func TestAggregate_SumasYTopeCien(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		n := rnd.IntN(20)
		list := make([]*entity.Product, 0, n)
		covered := make([]*entity.Product, 0, n)
		sumStock, sumDemand := 0, 0
		for j := 0; j < n; j++ {
			s, d := rnd.IntN(500), rnd.IntN(500)
			sumStock += s
			sumDemand += d
			list = append(list, &entity.Product{Stock: s, Demand: d})
			covered = append(covered, &entity.Product{Stock: d + rnd.IntN(50), Demand: d})
		}

		k := inventory.Aggregate(list)
		assert.Equal(t, sumStock, k.TotalStock)
		assert.Equal(t, sumDemand, k.TotalDemand)
		assert.True(t, k.FillRate.LessThanOrEqual(decimal.NewFromInt(100)))

		full := inventory.Aggregate(covered)
		if full.TotalDemand > 0 {
			assert.True(t, full.FillRate.Equal(decimal.NewFromInt(100)),
				"con stock >= demanda en todos los productos el fill rate debe ser 100, fue %s", full.FillRate)
		}
	}
}

func TestStatusCounts(t *testing.T) {
	counts := inventory.StatusCounts(products([2]int{180, 120}, [2]int{80, 80}, [2]int{24, 120}, [2]int{30, 100}))
	assert.Equal(t, 1, counts[inventory.StatusHealthy])
	assert.Equal(t, 1, counts[inventory.StatusLow])
	assert.Equal(t, 2, counts[inventory.StatusCritical])
}
