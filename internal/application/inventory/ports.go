package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios atados a ella.
// Garantiza que la secuencia leer-validar-escribir de una mutación no se intercale con otra.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}
