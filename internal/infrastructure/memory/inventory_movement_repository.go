package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo historial append-only.
type InventoryMovementRepo struct {
	s      *Store
	locked bool
}

func NewInventoryMovementRepository(s *Store) *InventoryMovementRepo {
	return &InventoryMovementRepo{s: s}
}

func (r *InventoryMovementRepo) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if !r.locked {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.appendMovement(movement)
}

func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.InventoryMovement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.locked {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.movementsByProduct(productID, limit)
}
