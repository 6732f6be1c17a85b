package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/sales"
)

// SalesSummaryRequest query de GET /api/sales/summary. Fechas en formato YYYY-MM-DD.
type SalesSummaryRequest struct {
	StoreID   string `query:"store_id"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// SalesSummaryResponse resumen de ventas del período con financiamiento y totales en bolívares.
type SalesSummaryResponse struct {
	Period       PeriodDTO              `json:"period"`
	Summary      sales.Summary          `json:"summary"`
	Financing    sales.FinancingSummary `json:"financing"`
	BCVRate      decimal.Decimal        `json:"bcv_rate"` // cero si no hay tasa registrada
	TotalSalesBs decimal.Decimal        `json:"total_sales_bs"`
}

// PeriodDTO rango de fechas de un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
