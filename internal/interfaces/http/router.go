package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-visibility/internal/application/analytics"
	"github.com/jhoicas/Inventario-visibility/internal/application/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/application/report"
	"github.com/jhoicas/Inventario-visibility/internal/application/usecase"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/pkg/jwt"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

// MutationRoles roles que pueden cambiar demanda o trasladar stock cuando la auth está activa.
var MutationRoles = []string{jwt.RoleAdmin, jwt.RoleBodeguero}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *inventory.InventoryUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.StockReportUseCase

	// GraphQL handler montado en POST /graphql (opcional).
	GraphQL fiber.Handler

	Idempotency    repository.IdempotencyStore
	IdempotencyTTL time.Duration

	// JWTSecret vacío deja las mutaciones abiertas (modo demo del tablero).
	JWTSecret string
	JWTIssuer string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Mutaciones: auth opcional según JWT_SECRET + idempotencia opcional por header
	mutation := []fiber.Handler{}
	if deps.JWTSecret != "" {
		mutation = append(mutation, AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(MutationRoles...))
	}
	if deps.Idempotency != nil {
		mutation = append(mutation, IdempotencyMiddleware(deps.Idempotency, deps.IdempotencyTTL, deps.Log))
	}

	// Warehouses (público)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Get("/warehouses", warehouseHandler.List)
	api.Get("/warehouses/:code", warehouseHandler.GetByCode)

	// Products (lecturas públicas)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", inventoryHandler.ListMovements)
	products.Put("/:id/demand", chain(mutation, inventoryHandler.UpdateDemand)...)
	products.Post("/:id/transfer", chain(mutation, inventoryHandler.Transfer)...)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/trend", dashboardHandler.GetTrend)

	// Reports
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		api.Get("/reports/stock.pdf", reportHandler.StockPDF)
	}

	if deps.GraphQL != nil {
		app.Post("/graphql", OptionalAuthMiddleware(deps.JWTSecret, deps.JWTIssuer), deps.GraphQL)
	}
}

// chain copia los middlewares para que cada ruta tenga su propio slice.
func chain(middlewares []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middlewares)+1)
	out = append(out, middlewares...)
	return append(out, h)
}
