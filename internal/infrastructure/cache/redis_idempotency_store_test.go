package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-visibility/internal/infrastructure/cache"
	"github.com/jhoicas/Inventario-visibility/pkg/config"
)

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./internal/infrastructure/cache/...
func TestRedisIdempotencyStore_SetNX(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	s, err := cache.NewRedisIdempotencyStore(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer s.Close()

	key := uuid.NewString()
	ok, err := s.MarkProcessed(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.MarkProcessed(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Release(ctx, key))
	ok, err = s.MarkProcessed(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
