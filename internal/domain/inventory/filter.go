package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
)

// ProductFilter combina los filtros de la tabla de productos.
// Un Caser no es seguro entre goroutines: construir un filtro por consulta.
type ProductFilter struct {
	search    string
	status    *Status
	warehouse string
	fold      cases.Caser
}

// NewProductFilter construye el filtro. warehouse vacío o "all" no filtra por bodega;
// status nil no filtra por estado.
func NewProductFilter(search string, status *Status, warehouse string) *ProductFilter {
	f := &ProductFilter{status: status, fold: cases.Fold()}
	if s := strings.TrimSpace(search); s != "" {
		f.search = f.fold.String(s)
	}
	if w := strings.TrimSpace(warehouse); w != "" && !strings.EqualFold(w, statusAll) {
		f.warehouse = w
	}
	return f
}

// Match indica si el producto cumple todos los filtros activos.
func (f *ProductFilter) Match(p *entity.Product) bool {
	if p == nil {
		return false
	}
	if f.search != "" &&
		!strings.Contains(f.fold.String(p.Name), f.search) &&
		!strings.Contains(f.fold.String(p.SKU), f.search) &&
		!strings.Contains(f.fold.String(p.ID), f.search) {
		return false
	}
	if f.warehouse != "" && p.Warehouse != f.warehouse {
		return false
	}
	if f.status != nil && Classify(p.Stock, p.Demand) != *f.status {
		return false
	}
	return true
}

// Apply devuelve los productos que cumplen el filtro, en el orden de entrada.
func (f *ProductFilter) Apply(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
