package cache

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/pkg/config"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

const memorySweepInterval = 5 * time.Minute

// NewIdempotencyStore elige Redis si REDIS_ADDR está definido; si Redis no responde cae al store en memoria.
func NewIdempotencyStore(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) repository.IdempotencyStore {
	if cfg.Addr == "" {
		log.Info().Msg("idempotencia: store en memoria")
		return NewMemoryIdempotencyStore(memorySweepInterval)
	}
	store, err := NewRedisIdempotencyStore(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("idempotencia: Redis no disponible, usando memoria")
		return NewMemoryIdempotencyStore(memorySweepInterval)
	}
	log.Info().Str("addr", cfg.Addr).Msg("idempotencia: store en Redis")
	return store
}
