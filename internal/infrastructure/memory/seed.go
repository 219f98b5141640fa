package memory

import "github.com/jhoicas/Inventario-visibility/internal/domain/entity"

// SeedWarehouses bodegas de referencia.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "BLR-A", Name: "Bangalore Alpha", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune Charlie", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi Beta", City: "Delhi", Country: "India"},
		{Code: "MUM-D", Name: "Mumbai Delta", City: "Mumbai", Country: "India"},
	}
}

// SeedProducts productos de referencia; coinciden con sql/seed.sql del adaptador postgres.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Thread Locker", SKU: "TLD-242-10", Warehouse: "BLR-A", Stock: 150, Demand: 90},
		{ID: "P-1006", Name: "O-Ring Seal", SKU: "ORS-20-100", Warehouse: "MUM-D", Stock: 45, Demand: 45},
		{ID: "P-1007", Name: "Steel Rod 6mm", SKU: "ROD-06-300", Warehouse: "PNQ-C", Stock: 200, Demand: 180},
		{ID: "P-1008", Name: "Ball Bearing", SKU: "BBR-12-25", Warehouse: "DEL-B", Stock: 30, Demand: 100},
	}
}
