// Package memory implementa los puertos de persistencia sobre estructuras en memoria.
// Es el almacén por defecto del tablero: se crea en main con el fixture de referencia y se cierra al apagar.
package memory

import (
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/domain/entity"
)

// ErrStoreClosed lo devuelven los repos después de Close.
var ErrStoreClosed = errors.New("memory store cerrado")

// Store guarda productos, bodegas y movimientos. mu protege todo el estado:
// lecturas con RLock, mutaciones con Lock (tomado por TxRunner para toda la secuencia leer-validar-escribir).
type Store struct {
	mu     sync.RWMutex
	closed bool

	products   []*entity.Product
	byID       map[string]int
	warehouses []*entity.Warehouse
	movements  []*entity.InventoryMovement
}

// NewStore crea un store con las bodegas y productos dados, en ese orden.
// Un ID de producto repetido reemplaza al anterior.
func NewStore(warehouses []entity.Warehouse, products []entity.Product) *Store {
	s := &Store{byID: make(map[string]int, len(products))}
	for i := range warehouses {
		w := warehouses[i]
		s.warehouses = append(s.warehouses, &w)
	}
	now := time.Now().UTC()
	for i := range products {
		p := products[i]
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = now
		}
		if idx, ok := s.byID[p.ID]; ok {
			s.products[idx] = &p
			continue
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, &p)
	}
	return s
}

// NewSeededStore crea el store con el fixture de referencia.
func NewSeededStore() *Store {
	return NewStore(SeedWarehouses(), SeedProducts())
}

// Close libera el estado; las operaciones posteriores devuelven ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.products, s.warehouses, s.movements = nil, nil, nil
	s.byID = nil
	return nil
}

// Los métodos siguientes asumen que el llamador ya tiene mu (lectura o escritura).

func (s *Store) listProducts() ([]*entity.Product, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (s *Store) getProduct(id string) (*entity.Product, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	idx, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return s.products[idx].Clone(), nil
}

func (s *Store) putProduct(p *entity.Product) (bool, error) {
	if s.closed {
		return false, ErrStoreClosed
	}
	idx, ok := s.byID[p.ID]
	if !ok {
		return false, nil
	}
	s.products[idx] = p.Clone()
	return true, nil
}

func (s *Store) listWarehouses() ([]*entity.Warehouse, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	out := make([]*entity.Warehouse, 0, len(s.warehouses))
	for _, w := range s.warehouses {
		c := *w
		out = append(out, &c)
	}
	return out, nil
}

func (s *Store) appendMovement(m *entity.InventoryMovement) error {
	if s.closed {
		return ErrStoreClosed
	}
	c := *m
	s.movements = append(s.movements, &c)
	return nil
}

func (s *Store) movementsByProduct(productID string, limit int) ([]*entity.InventoryMovement, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	out := make([]*entity.InventoryMovement, 0)
	for i := len(s.movements) - 1; i >= 0; i-- {
		if s.movements[i].ProductID != productID {
			continue
		}
		c := *s.movements[i]
		out = append(out, &c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
