package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-pos/internal/application/inventory"
	"github.com/jhoicas/retail-pos/internal/application/reports"
	appsales "github.com/jhoicas/retail-pos/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	SalesUC     *appsales.SummaryUseCase
	ReportUC    *reports.ExecutiveReportUseCase
	JWTSecret   string
	JWTIssuer   string
	Logger      zerolog.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Logger)
	api.Get("/stores", inventoryHandler.ListStores)

	inv := api.Group("/inventory")
	inv.Get("/", inventoryHandler.List)
	inv.Get("/grouped", inventoryHandler.Grouped)
	inv.Get("/stats", inventoryHandler.Stats)

	salesHandler := NewSalesHandler(deps.SalesUC, deps.Logger)
	api.Get("/sales/summary", salesHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC, deps.Logger)
	api.Get("/reports/executive", reportHandler.GetExecutive)
}
