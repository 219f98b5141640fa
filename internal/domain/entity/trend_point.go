package entity

// TrendPoint es un punto diario de la serie stock vs demanda.
type TrendPoint struct {
	Date   string // YYYY-MM-DD
	Stock  int
	Demand int
}
