package gql

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/Inventario-visibility/internal/application/dto"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

var errInternal = errors.New("error interno")

// Actor operador autenticado que ejecuta la operación (vacío si no hay token).
type Actor struct {
	UserID string
	Role   string
}

type actorKey struct{}

// WithActor guarda el actor en el contexto de la operación.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext devuelve el actor o uno vacío.
func ActorFromContext(ctx context.Context) Actor {
	a, _ := ctx.Value(actorKey{}).(Actor)
	return a
}

// Request cuerpo estándar de una petición GraphQL sobre HTTP.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler ejecuta la operación. actor extrae la identidad que dejó el middleware de auth.
// Los errores de resolución viajan en errors[] con status 200, como indica la convención GraphQL.
func Handler(schema graphql.Schema, actor func(*fiber.Ctx) Actor, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req Request
		if err := c.BodyParser(&req); err != nil || req.Query == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se requiere {query, variables?, operationName?}"})
		}

		ctx := c.UserContext()
		if actor != nil {
			ctx = WithActor(ctx, actor(c))
		}
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ctx,
		})
		if result.HasErrors() {
			log.Debug().Int("errors", len(result.Errors)).Str("operation", req.OperationName).Msg("graphql con errores")
		}
		return c.JSON(result)
	}
}
