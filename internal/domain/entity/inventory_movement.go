package entity

import "time"

// Tipos de movimiento registrados por las mutaciones del tablero.
const (
	MovementTypeDemandUpdate = "DEMAND_UPDATE" // cambio de demanda
	MovementTypeTransfer     = "TRANSFER"      // traslado entre bodegas
)

// InventoryMovement es el registro de auditoría de una mutación exitosa.
// En TRANSFER guarda la cantidad movida, que el producto reubicado no conserva.
type InventoryMovement struct {
	ID             string
	ProductID      string
	Type           string
	FromWarehouse  string
	ToWarehouse    string
	Quantity       int
	PreviousStock  int
	NewStock       int
	PreviousDemand int
	NewDemand      int
	CreatedAt      time.Time
	CreatedBy      string // UserID del token, vacío si la autenticación está deshabilitada
}
