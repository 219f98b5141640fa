package memory

import (
	"context"

	"github.com/jhoicas/Inventario-visibility/internal/application/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones con el lock de escritura del store.
// Si fn falla se restauran los productos y movimientos tal como estaban.
type TxRunner struct {
	s *Store
}

func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.closed {
		return ErrStoreClosed
	}

	snapshot := make([]*entity.Product, len(r.s.products))
	copy(snapshot, r.s.products)
	movCount := len(r.s.movements)

	err := fn(
		&ProductRepo{s: r.s, locked: true},
		&InventoryMovementRepo{s: r.s, locked: true},
	)
	if err != nil {
		// putProduct reemplaza punteros, así que restaurar el slice deshace cualquier Update.
		r.s.products = snapshot
		r.s.movements = r.s.movements[:movCount]
		return err
	}
	return nil
}
