package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
)

var _ repository.IdempotencyStore = (*MemoryIdempotencyStore)(nil)

// MemoryIdempotencyStore guarda las claves en un mapa con vencimiento; una sola instancia de la API.
type MemoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]time.Time // clave -> vence
	now     func() time.Time

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryIdempotencyStore crea el store y arranca la limpieza periódica de claves vencidas.
// sweepEvery <= 0 desactiva la limpieza (las claves vencidas se reemplazan igual al reutilizarse).
func NewMemoryIdempotencyStore(sweepEvery time.Duration) *MemoryIdempotencyStore {
	s := &MemoryIdempotencyStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if sweepEvery > 0 {
		s.wg.Add(1)
		go s.sweepLoop(sweepEvery)
	}
	return s
}

// WithClock reemplaza el reloj (tests).
func (s *MemoryIdempotencyStore) WithClock(now func() time.Time) *MemoryIdempotencyStore {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
	return s
}

// MarkProcessed devuelve true si la clave no existe o ya venció.
func (s *MemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if exp, ok := s.entries[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.entries[key] = now.Add(ttl)
	return true, nil
}

// Release borra la clave.
func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Len cantidad de claves guardadas, vencidas incluidas hasta la próxima limpieza.
func (s *MemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close detiene la limpieza. Se puede llamar varias veces.
func (s *MemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

func (s *MemoryIdempotencyStore) sweepLoop(every time.Duration) {
	defer s.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryIdempotencyStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, exp := range s.entries {
		if !now.Before(exp) {
			delete(s.entries, k)
		}
	}
}
