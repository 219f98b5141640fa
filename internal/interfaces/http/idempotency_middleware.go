package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

// HeaderIdempotencyKey header opcional en las mutaciones.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

// IdempotencyMiddleware rechaza con 409 una mutación cuya Idempotency-Key ya se vio dentro del TTL.
// La clave se registra antes de ejecutar el handler y se libera si el handler falla (status >= 400),
// así un reintento de una petición no aplicada se procesa. Si el store falla, la petición sigue.
func IdempotencyMiddleware(store repository.IdempotencyStore, ttl time.Duration, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderIdempotencyKey)
		if key == "" {
			return c.Next()
		}
		if len(key) > maxIdempotencyKeyLen {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: CodeValidation, Message: "Idempotency-Key demasiado larga",
			})
		}

		scoped := c.Method() + " " + c.Path() + " " + key
		fresh, err := store.MarkProcessed(c.UserContext(), scoped, ttl)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotencia no disponible, se procesa la petición")
			return c.Next()
		}
		if !fresh {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: CodeDuplicateRequest, Message: domain.ErrDuplicateRequest.Error(),
			})
		}

		err = c.Next()
		if err != nil || c.Response().StatusCode() >= fiber.StatusBadRequest {
			if relErr := store.Release(c.UserContext(), scoped); relErr != nil {
				log.Warn().Err(relErr).Str("key", key).Msg("no se pudo liberar la Idempotency-Key")
			}
		}
		return err
	}
}
