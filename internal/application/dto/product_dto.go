package dto

// ProductQuery filtros de GET /api/products.
type ProductQuery struct {
	Search    string `query:"search"`
	Status    string `query:"status"`    // healthy | low | critical | all
	Warehouse string `query:"warehouse"` // código de bodega | all
	PageRequest
}

// ProductResponse salida de un producto con su estado derivado.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

// ProductListResponse lista (opcionalmente paginada) de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
