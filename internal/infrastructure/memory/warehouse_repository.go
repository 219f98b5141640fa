package memory

import (
	"context"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo lectura de bodegas (no cambian en tiempo de ejecución).
type WarehouseRepo struct {
	s *Store
}

func NewWarehouseRepository(s *Store) *WarehouseRepo {
	return &WarehouseRepo{s: s}
}

func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listWarehouses()
}

func (r *WarehouseRepo) GetByCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range list {
		if w.Code == code {
			return w, nil
		}
	}
	return nil, nil
}
