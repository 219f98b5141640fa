package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/Inventario-visibility/internal/interfaces/http"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

type brokenStore struct{}

func (brokenStore) MarkProcessed(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis caído")
}
func (brokenStore) Release(context.Context, string) error { return errors.New("redis caído") }
func (brokenStore) Close() error                         { return nil }

func idemApp(store repository.IdempotencyStore) (*fiber.App, *int) {
	calls := 0
	app := fiber.New()
	app.Post("/a", apphttp.IdempotencyMiddleware(store, time.Minute, logger.Nop()), func(c *fiber.Ctx) error {
		calls++
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/b", apphttp.IdempotencyMiddleware(store, time.Minute, logger.Nop()), func(c *fiber.Ctx) error {
		calls++
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, &calls
}

func post(t *testing.T, app *fiber.App, path, key string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(apphttp.HeaderIdempotencyKey, key)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestIdempotency_ClavePorRuta(t *testing.T) {
	store := cache.NewMemoryIdempotencyStore(0)
	defer store.Close()
	app, calls := idemApp(store)

	assert.Equal(t, http.StatusNoContent, post(t, app, "/a", "k1"))
	assert.Equal(t, http.StatusConflict, post(t, app, "/a", "k1"))
	// Misma clave en otra ruta no choca
	assert.Equal(t, http.StatusNoContent, post(t, app, "/b", "k1"))
	// Sin clave no hay control
	assert.Equal(t, http.StatusNoContent, post(t, app, "/a", ""))
	assert.Equal(t, http.StatusNoContent, post(t, app, "/a", ""))
	assert.Equal(t, 4, *calls)
}

func TestIdempotency_ClaveDemasiadoLarga(t *testing.T) {
	store := cache.NewMemoryIdempotencyStore(0)
	defer store.Close()
	app, calls := idemApp(store)

	assert.Equal(t, http.StatusBadRequest, post(t, app, "/a", strings.Repeat("x", 129)))
	assert.Zero(t, *calls)
}

func TestIdempotency_FalloLiberaLaClave(t *testing.T) {
	store := cache.NewMemoryIdempotencyStore(0)
	defer store.Close()

	fail := true
	calls := 0
	app := fiber.New()
	app.Post("/a", apphttp.IdempotencyMiddleware(store, time.Minute, logger.Nop()), func(c *fiber.Ctx) error {
		calls++
		if fail {
			return c.SendStatus(fiber.StatusBadGateway)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/err", apphttp.IdempotencyMiddleware(store, time.Minute, logger.Nop()), func(c *fiber.Ctx) error {
		calls++
		return fiber.ErrInternalServerError
	})

	assert.Equal(t, http.StatusBadGateway, post(t, app, "/a", "k1"))
	fail = false
	assert.Equal(t, http.StatusNoContent, post(t, app, "/a", "k1"))
	assert.Equal(t, http.StatusConflict, post(t, app, "/a", "k1"))

	// Un error devuelto por el handler también libera la clave
	assert.Equal(t, http.StatusInternalServerError, post(t, app, "/err", "k2"))
	assert.Equal(t, http.StatusInternalServerError, post(t, app, "/err", "k2"))
	assert.Equal(t, 4, calls)
}

func TestIdempotency_StoreCaidoNoBloquea(t *testing.T) {
	app, calls := idemApp(brokenStore{})
	assert.Equal(t, http.StatusNoContent, post(t, app, "/a", "k1"))
	assert.Equal(t, http.StatusNoContent, post(t, app, "/a", "k1"))
	assert.Equal(t, 2, *calls)
}
