package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalStock  int             `json:"total_stock"`
	TotalDemand int             `json:"total_demand"`
	Fulfillable int             `json:"fulfillable"`
	FillRate    decimal.Decimal `json:"fill_rate"` // porcentaje, 2 decimales
	// Conteo por estado derivado (healthy, low, critical)
	StatusCounts  map[string]int `json:"status_counts"`
	ProductsCount int            `json:"products_count"`
}

// TrendPointDTO punto diario de la gráfica stock vs demanda.
type TrendPointDTO struct {
	Date   string `json:"date"`
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// TrendResponse respuesta de GET /api/dashboard/trend.
type TrendResponse struct {
	Range  string          `json:"range"`
	Points []TrendPointDTO `json:"points"`
}
