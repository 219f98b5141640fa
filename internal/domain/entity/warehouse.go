package entity

// Warehouse representa una bodega de referencia (solo lectura).
type Warehouse struct {
	Code    string
	Name    string
	City    string
	Country string
}
