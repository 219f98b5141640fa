// Package analytics contiene los casos de uso de los KPIs del tablero de
// visibilidad de inventario: resumen agregado y serie de tendencia.
package analytics

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

// DashboardUseCase calcula los KPIs a partir de la colección completa de productos.
//
// Los KPIs no se persisten: cada consulta relee los productos y agrega de nuevo,
// así que reflejan de inmediato cualquier mutación previa.
type DashboardUseCase struct {
	productRepo repository.ProductRepository

	now  func() time.Time
	rand func() float64
}

// Option configura el DashboardUseCase (reloj y fuente aleatoria para tests).
type Option func(*DashboardUseCase)

// WithClock fija el reloj usado para fechar la serie.
func WithClock(now func() time.Time) Option {
	return func(uc *DashboardUseCase) { uc.now = now }
}

// WithRand fija la fuente de variación de la serie; debe devolver valores en [0, 1).
func WithRand(r func() float64) Option {
	return func(uc *DashboardUseCase) { uc.rand = r }
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, opts ...Option) *DashboardUseCase {
	uc := &DashboardUseCase{
		productRepo: productRepo,
		now:         time.Now,
		rand:        rand.Float64,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetSummary devuelve stock total, demanda total, fill rate y el conteo por estado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard: productos: %w", domain.ErrFetchFailure, err)
	}

	kpi := inventory.Aggregate(products)
	counts := inventory.StatusCounts(products)

	statusCounts := make(map[string]int, len(counts))
	for st, n := range counts {
		statusCounts[string(st)] = n
	}

	return &dto.DashboardSummaryDTO{
		TotalStock:    kpi.TotalStock,
		TotalDemand:   kpi.TotalDemand,
		Fulfillable:   kpi.Fulfillable,
		FillRate:      kpi.FillRate.Round(2),
		StatusCounts:  statusCounts,
		ProductsCount: len(products),
	}, nil
}

// GetTrend devuelve la serie diaria para el rango pedido ("7d", "14d", "30d"; vacío = 7d),
// del día más antiguo a hoy.
func (uc *DashboardUseCase) GetTrend(ctx context.Context, rangeToken string) (*dto.TrendResponse, error) {
	days, err := inventory.ParseRange(rangeToken)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: dashboard: productos: %w", domain.ErrFetchFailure, err)
	}
	kpi := inventory.Aggregate(products)

	series := inventory.TrendSeries(kpi.TotalStock, kpi.TotalDemand, days, uc.now(), uc.rand)
	points := make([]dto.TrendPointDTO, 0, len(series))
	for _, p := range series {
		points = append(points, dto.TrendPointDTO{Date: p.Date, Stock: p.Stock, Demand: p.Demand})
	}

	label := strings.ToLower(strings.TrimSpace(rangeToken))
	if label == "" {
		label = inventory.DefaultRange
	}
	return &dto.TrendResponse{Range: label, Points: points}, nil
}
