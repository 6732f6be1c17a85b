// @title           Retail POS API
// @version         1.0
// @description     API de inventario y ventas multi-tienda.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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

	_ "github.com/jhoicas/retail-pos/docs"
	"github.com/jhoicas/retail-pos/internal/application/inventory"
	"github.com/jhoicas/retail-pos/internal/application/reports"
	appsales "github.com/jhoicas/retail-pos/internal/application/sales"
	"github.com/jhoicas/retail-pos/internal/application/session"
	"github.com/jhoicas/retail-pos/internal/infrastructure/cache"
	"github.com/jhoicas/retail-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/retail-pos/internal/interfaces/http"
	"github.com/jhoicas/retail-pos/pkg/config"
	"github.com/jhoicas/retail-pos/pkg/logger"
)

// reportCache une el puerto de caché con su ciclo de vida.
type reportCache interface {
	reports.ReportCache
	cache.Lifecycle
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Keep-alive de la sesión con la base de datos
	var keepAlive *session.KeepAlive
	if cfg.Session.KeepAliveInterval > 0 {
		keepAlive = session.NewKeepAlive(pool, cfg.Session.KeepAliveInterval, log.Zerolog())
		keepAlive.Start(ctx)
	}

	// Caché del reporte ejecutivo: Redis si está configurado, memoria en otro caso
	var rc reportCache
	if cfg.Redis.Enabled() {
		rc = cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	} else {
		rc = cache.NewMemoryReportCache()
	}
	if err := rc.Start(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, se usa caché en memoria")
		_ = rc.Stop()
		rc = cache.NewMemoryReportCache()
		_ = rc.Start(ctx)
	}

	inventoryRepo := postgres.NewInventoryRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	rateRepo := postgres.NewExchangeRateRepository(pool)

	inventoryUC := inventory.NewUseCase(inventoryRepo, storeRepo)
	salesUC := appsales.NewSummaryUseCase(saleRepo, rateRepo, storeRepo)
	reportUC := reports.NewExecutiveReportUseCase(reports.Repositories{
		Inventory:    inventoryRepo,
		Stores:       storeRepo,
		Sales:        saleRepo,
		ExchangeRate: rateRepo,
	}, rc, reports.CacheSettings{
		TTL:    cfg.Reports.CacheTTL,
		Bucket: cfg.Reports.CacheBucket,
	}, log.Component("reports"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		Logger:      log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if keepAlive != nil {
		keepAlive.Stop()
	}
	if err := rc.Stop(); err != nil {
		log.Error().Err(err).Msg("cierre de la caché")
	}

	log.Info().Msg("aplicación detenida")
}
