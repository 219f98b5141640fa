package dto

import "time"

// UpdateDemandRequest body para PUT /api/products/:id/demand.
type UpdateDemandRequest struct {
	Demand *int `json:"demand"`
}

// TransferStockRequest body para POST /api/products/:id/transfer.
type TransferStockRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Qty  int    `json:"qty"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Type           string    `json:"type"`
	FromWarehouse  string    `json:"from_warehouse,omitempty"`
	ToWarehouse    string    `json:"to_warehouse,omitempty"`
	Quantity       int       `json:"quantity"`
	PreviousStock  int       `json:"previous_stock"`
	NewStock       int       `json:"new_stock"`
	PreviousDemand int       `json:"previous_demand"`
	NewDemand      int       `json:"new_demand"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by,omitempty"`
}

// MovementListResponse historial de un producto.
type MovementListResponse struct {
	ProductID string             `json:"product_id"`
	Items     []MovementResponse `json:"items"`
}
