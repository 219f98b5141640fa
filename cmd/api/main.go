package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	appanalytics "github.com/jhoicas/Inventario-visibility/internal/application/analytics"
	"github.com/jhoicas/Inventario-visibility/internal/application/inventory"
	"github.com/jhoicas/Inventario-visibility/internal/application/report"
	"github.com/jhoicas/Inventario-visibility/internal/application/usecase"
	"github.com/jhoicas/Inventario-visibility/internal/domain/repository"
	"github.com/jhoicas/Inventario-visibility/internal/infrastructure/cache"
	"github.com/jhoicas/Inventario-visibility/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Inventario-visibility/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-visibility/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-visibility/internal/interfaces/gql"
	httpRouter "github.com/jhoicas/Inventario-visibility/internal/interfaces/http"
	"github.com/jhoicas/Inventario-visibility/pkg/config"
	"github.com/jhoicas/Inventario-visibility/pkg/logger"
)

// stores repositorios del driver elegido más su función de cierre.
type stores struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	movements  repository.InventoryMovementRepository
	tx         inventory.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st := openStores(ctx, cfg, log)
	defer st.close()

	idem := cache.NewIdempotencyStore(ctx, cfg.Redis, log.Named("idempotency"))
	defer idem.Close()

	productUC := usecase.NewProductUseCase(st.products)
	warehouseUC := usecase.NewWarehouseUseCase(st.warehouses)
	inventoryUC := inventory.NewInventoryUseCase(st.tx, st.products, st.warehouses, st.movements, log.Named("inventory"))
	dashboardUC := appanalytics.NewDashboardUseCase(st.products)
	reportUC := report.NewStockReportUseCase(st.products, infrapdf.NewMarotoPDFGenerator(cfg.App.Name, language.English))

	schema, err := gql.NewSchema(gql.Deps{
		Products:      productUC,
		Warehouses:    warehouseUC,
		Inventory:     inventoryUC,
		Dashboard:     dashboardUC,
		RequireAuth:   cfg.JWT.Enabled(),
		MutationRoles: httpRouter.MutationRoles,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}
	gqlHandler := gql.Handler(schema, func(c *fiber.Ctx) gql.Actor {
		return gql.Actor{UserID: httpRouter.GetUserID(c), Role: httpRouter.GetRole(c)}
	}, log.Named("graphql"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsEnabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Inventory Visibility API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		WarehouseUC:    warehouseUC,
		InventoryUC:    inventoryUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		GraphQL:        gqlHandler,
		Idempotency:    idem,
		IdempotencyTTL: cfg.Idempotency.TTL,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		Log:            log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) stores {
	if cfg.Store.Driver != config.StorePostgres {
		s := memory.NewSeededStore()
		return stores{
			products:   memory.NewProductRepository(s),
			warehouses: memory.NewWarehouseRepository(s),
			movements:  memory.NewInventoryMovementRepository(s),
			tx:         memory.NewTxRunner(s),
			close:      func() { _ = s.Close() },
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, postgres.DefaultPoolOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if cfg.Store.Seed {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		if err := postgres.Seed(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("cargar fixture")
		}
		log.Info().Msg("esquema y fixture listos")
	}
	return stores{
		products:   postgres.NewProductRepository(pool),
		warehouses: postgres.NewWarehouseRepository(pool),
		movements:  postgres.NewInventoryMovementRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		close:      pool.Close,
	}
}
