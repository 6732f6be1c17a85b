package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/inventory"
	"github.com/jhoicas/retail-pos/internal/domain/sales"
)

// ExecutiveReportDTO respuesta de GET /api/reports/executive.
// Combina inventario y ventas del día y del mes en curso para una tienda o todas.
type ExecutiveReportDTO struct {
	StoreID     string                           `json:"store_id"`
	GeneratedAt time.Time                        `json:"generated_at"`
	DateLabel   string                           `json:"date_label"` // ej: "Octubre 2026"
	Inventory   inventory.FilteredInventoryStats `json:"inventory"`
	Categories  []inventory.CategoryStat         `json:"categories"`

	TodaySales   sales.Summary          `json:"today_sales"`
	MonthlySales sales.Summary          `json:"monthly_sales"`
	Financing    sales.FinancingSummary `json:"financing"` // mes en curso

	BCVRate          decimal.Decimal `json:"bcv_rate"`
	TodaySalesBs     decimal.Decimal `json:"today_sales_bs"`
	MonthlySalesBs   decimal.Decimal `json:"monthly_sales_bs"`
	InventoryValueBs decimal.Decimal `json:"inventory_value_bs"`
}
