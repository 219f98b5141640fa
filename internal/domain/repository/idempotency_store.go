package repository

import (
	"context"
	"time"
)

// IdempotencyStore registra claves Idempotency-Key de las mutaciones.
type IdempotencyStore interface {
	// MarkProcessed devuelve true si la clave es nueva y queda registrada por ttl,
	// false si ya existía.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release borra la clave para que la petición pueda reintentarse.
	Release(ctx context.Context, key string) error
	Close() error
}
