package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/domain/inventory"
	"github.com/jhoicas/retail-pos/internal/domain/sales"
)

func TestReportCodec_ConservaMontosFechasYAnidados(t *testing.T) {
	generated := time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)
	in := &dto.ExecutiveReportDTO{
		StoreID:     "store-1",
		GeneratedAt: generated,
		DateLabel:   "Octubre 2026",
		Inventory: inventory.FilteredInventoryStats{
			TotalValue:    decimal.RequireFromString("1234.56"),
			TotalProducts: 2,
			LowStock:      1,
			TotalStores:   3,
			Products: []inventory.AggregatedProduct{{
				ProductID:  "p-1",
				Product:    inventory.ProductInfo{ID: "p-1", SKU: "SKU-001", SalePriceUSD: decimal.RequireFromString("99.99")},
				TotalQty:   6,
				TotalValue: decimal.RequireFromString("599.94"),
				StoreIDs:   []string{"store-1", "store-2"},
			}},
		},
		Categories:   []inventory.CategoryStat{{Label: "Teléfonos", Value: "phones", TotalValue: decimal.RequireFromString("599.94"), ProductCount: 1}},
		TodaySales:   sales.Summary{TotalSales: decimal.RequireFromString("80.10"), AverageSales: decimal.RequireFromString("80.10"), Count: 1},
		MonthlySales: sales.Summary{TotalSales: decimal.RequireFromString("-2.34"), Count: 1},
		Financing: sales.FinancingSummary{
			Krece: sales.ProviderSummary{Count: 1, InitialUSD: decimal.RequireFromString("50"), FinancedUSD: decimal.RequireFromString("150")},
		},
		BCVRate:          decimal.RequireFromString("36.57"),
		InventoryValueBs: decimal.RequireFromString("45147.86"),
	}

	payload, err := encodeReport(in)
	require.NoError(t, err)
	out, err := decodeReport(payload)
	require.NoError(t, err)

	assert.Equal(t, "store-1", out.StoreID)
	assert.True(t, generated.Equal(out.GeneratedAt))
	assert.Equal(t, "Octubre 2026", out.DateLabel)
	assert.True(t, in.Inventory.TotalValue.Equal(out.Inventory.TotalValue), out.Inventory.TotalValue.String())
	assert.Equal(t, 3, out.Inventory.TotalStores)
	require.Len(t, out.Inventory.Products, 1)
	assert.Equal(t, []string{"store-1", "store-2"}, out.Inventory.Products[0].StoreIDs)
	assert.True(t, decimal.RequireFromString("99.99").Equal(out.Inventory.Products[0].Product.SalePriceUSD))
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "Teléfonos", out.Categories[0].Label)
	assert.True(t, decimal.RequireFromString("-2.34").Equal(out.MonthlySales.TotalSales))
	assert.True(t, decimal.RequireFromString("150").Equal(out.Financing.Krece.FinancedUSD))
	assert.True(t, in.BCVRate.Equal(out.BCVRate))
	assert.True(t, in.InventoryValueBs.Equal(out.InventoryValueBs))
}

func TestReportCodec_PayloadInvalido(t *testing.T) {
	_, err := decodeReport([]byte("{no es json"))
	assert.Error(t, err)
}
