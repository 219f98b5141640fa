package report

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
)

// StockReport datos ya filtrados y agregados que se entregan al generador.
type StockReport struct {
	Title       string
	GeneratedAt time.Time
	Filters     string // descripción legible de los filtros aplicados
	KPI         inventory.KPI
	Rows        []dto.ProductResponse
}

// StockReportGenerator abstrae la generación del PDF (implementado en infrastructure/pdf).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}
