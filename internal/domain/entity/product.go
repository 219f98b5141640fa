package entity

import "time"

// Product representa un producto del tablero de inventario.
// Stock y Demand son enteros no negativos; el estado (healthy/low/critical) no se guarda,
// se deriva en cada lectura con inventory.Classify.
type Product struct {
	ID        string
	SKU       string
	Name      string
	Warehouse string // código de la bodega donde está el registro (ej. BLR-A)
	Stock     int
	Demand    int
	UpdatedAt time.Time
}

// Clone devuelve una copia independiente para que los repositorios no expongan su estado interno.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
