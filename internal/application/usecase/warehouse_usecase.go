package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

// WarehouseUseCase lectura de las bodegas de referencia.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve todas las bodegas.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listar bodegas: %w", domain.ErrFetchFailure, err)
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, toWarehouseResponse(w))
	}
	return items, nil
}

// GetByCode obtiene una bodega por código.
func (uc *WarehouseUseCase) GetByCode(ctx context.Context, code string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener bodega: %w", domain.ErrFetchFailure, err)
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	out := toWarehouseResponse(w)
	return &out, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		Code:    w.Code,
		Name:    w.Name,
		City:    w.City,
		Country: w.Country,
	}
}
