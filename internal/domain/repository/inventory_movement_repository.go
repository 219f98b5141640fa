package repository

import (
	"context"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
)

// InventoryMovementRepository guarda el historial de mutaciones (append-only).
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListByProduct devuelve los movimientos más recientes primero.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.InventoryMovement, error)
}
