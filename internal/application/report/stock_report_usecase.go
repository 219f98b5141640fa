package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/application/usecase"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

// StockReportUseCase genera el reporte PDF de la tabla de productos con los mismos
// filtros que GET /api/products (sin paginación).
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	generator   StockReportGenerator
	now         func() time.Time
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(productRepo repository.ProductRepository, generator StockReportGenerator) *StockReportUseCase {
	return &StockReportUseCase{productRepo: productRepo, generator: generator, now: time.Now}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
// Los KPIs del encabezado corresponden a los productos listados.
func (uc *StockReportUseCase) Generate(ctx context.Context, q dto.ProductQuery) ([]byte, string, error) {
	status, err := inventory.ParseStatusFilter(q.Status)
	if err != nil {
		return nil, "", err
	}
	all, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reporte: productos: %w", domain.ErrFetchFailure, err)
	}
	filtered := inventory.NewProductFilter(q.Search, status, q.Warehouse).Apply(all)

	rows := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, usecase.ToProductResponse(p))
	}

	now := uc.now()
	pdf, err := uc.generator.GenerateStockReport(ctx, StockReport{
		Title:       "Reporte de stock vs demanda",
		GeneratedAt: now,
		Filters:     describeFilters(q),
		KPI:         inventory.Aggregate(filtered),
		Rows:        rows,
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("stock-%s.pdf", now.Format("20060102-1504")), nil
}

func describeFilters(q dto.ProductQuery) string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(q.Search); s != "" {
		parts = append(parts, fmt.Sprintf("búsqueda %q", s))
	}
	if w := strings.TrimSpace(q.Warehouse); w != "" && !strings.EqualFold(w, "all") {
		parts = append(parts, "bodega "+w)
	}
	if s := strings.TrimSpace(q.Status); s != "" && !strings.EqualFold(s, "all") {
		parts = append(parts, "estado "+strings.ToLower(s))
	}
	if len(parts) == 0 {
		return "Todos los productos"
	}
	return strings.Join(parts, " · ")
}
