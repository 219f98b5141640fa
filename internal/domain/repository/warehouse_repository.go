package repository

import (
	"context"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura para las bodegas de referencia.
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
	// GetByCode devuelve (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Warehouse, error)
}
