package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de productos. Con locked=true opera dentro de TxRunner y no toma mu.
type ProductRepo struct {
	s      *Store
	locked bool
}

// NewProductRepository repo de uso general (toma el lock en cada llamada).
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.locked {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.listProducts()
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.locked {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.s.getProduct(id)
}

// GetForUpdate fuera de una transacción equivale a GetByID; el bloqueo real lo da TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if product.Stock < 0 || product.Demand < 0 {
		return fmt.Errorf("%w: stock y demanda no pueden ser negativos", domain.ErrInvalidInput)
	}
	if !r.locked {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	ok, err := r.s.putProduct(product)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
