package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

// ProductUseCase consultas de productos para la tabla del tablero.
// Stock y demanda solo cambian vía inventory.InventoryUseCase.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List aplica búsqueda, filtro por estado y por bodega, y luego pagina.
// Limit = 0 devuelve todos los productos filtrados (consulta GraphQL products).
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	status, err := inventory.ParseStatusFilter(q.Status)
	if err != nil {
		return nil, err
	}
	q.Normalize()

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listar productos: %w", domain.ErrFetchFailure, err)
	}
	filtered := inventory.NewProductFilter(q.Search, status, q.Warehouse).Apply(all)

	total := len(filtered)
	page := filtered
	if q.Offset >= total {
		page = nil
	} else if q.Limit > 0 {
		page = filtered[q.Offset:min(q.Offset+q.Limit, total)]
	} else {
		page = filtered[q.Offset:]
	}

	items := make([]dto.ProductResponse, 0, len(page))
	for _, p := range page {
		items = append(items, ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// GetByID obtiene un producto con su estado derivado.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener producto: %w", domain.ErrFetchFailure, err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := ToProductResponse(p)
	return &out, nil
}

// ToProductResponse mapea la entidad y calcula el estado en el momento de la lectura.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(inventory.Classify(p.Stock, p.Demand)),
	}
}
