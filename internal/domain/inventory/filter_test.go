package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
)

func fixture() []*entity.Product {
	return []*entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1007", Name: "Steel Rod 6mm", SKU: "ROD-06-300", Warehouse: "PNQ-C", Stock: 200, Demand: 180},
	}
}

func ids(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestProductFilter_Busqueda(t *testing.T) {
	cases := []struct {
		search string
		want   []string
	}{
		{"steel", []string{"P-1002", "P-1007"}},
		{"STEEL", []string{"P-1002", "P-1007"}},
		{"nut-08", []string{"P-1003"}},
		{"p-1001", []string{"P-1001"}},
		{"  ", []string{"P-1001", "P-1002", "P-1003", "P-1007"}},
		{"tornillo", []string{}},
	}
	for _, tc := range cases {
		f := inventory.NewProductFilter(tc.search, nil, "")
		assert.Equal(t, tc.want, ids(f.Apply(fixture())), "search=%q", tc.search)
	}
}

func TestProductFilter_BodegaYEstado(t *testing.T) {
	f := inventory.NewProductFilter("", nil, "PNQ-C")
	assert.Equal(t, []string{"P-1003", "P-1007"}, ids(f.Apply(fixture())))

	f = inventory.NewProductFilter("", nil, "all")
	assert.Len(t, f.Apply(fixture()), 4)

	critical := inventory.StatusCritical
	f = inventory.NewProductFilter("", &critical, "all")
	assert.Equal(t, []string{"P-1002"}, ids(f.Apply(fixture())))

	healthy := inventory.StatusHealthy
	f = inventory.NewProductFilter("steel", &healthy, "PNQ-C")
	assert.Equal(t, []string{"P-1007"}, ids(f.Apply(fixture())))
}

func TestProductFilter_EstadoSeRecalculaAlLeer(t *testing.T) {
	list := fixture()
	low := inventory.StatusLow
	f := inventory.NewProductFilter("", &low, "")
	assert.Equal(t, []string{"P-1003"}, ids(f.Apply(list)))

	list[2].Demand = 200
	assert.Empty(t, f.Apply(list))
}
