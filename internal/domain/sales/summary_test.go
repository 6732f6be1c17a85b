package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/sales"
)

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func salesFixture() []entity.SaleRecord {
	return []entity.SaleRecord{
		{ID: "s-1", StoreID: "store-1", TotalUSD: usd("100"), PaymentMethod: entity.PaymentMethodCash},
		{ID: "s-2", StoreID: "store-1", TotalUSD: usd("200"), PaymentMethod: entity.PaymentMethodKrece,
			KreceInitialUSD: usd("50"), KreceFinancedUSD: usd("150")},
		{ID: "s-3", StoreID: "store-2", TotalUSD: usd("300"), PaymentMethod: entity.PaymentMethodCashea,
			CasheaInitialUSD: usd("120"), CasheaFinancedUSD: usd("180")},
	}
}

func TestGetSalesSummary_TodasLasTiendas(t *testing.T) {
	got := sales.GetSalesSummary(salesFixture(), "")
	assert.True(t, usd("600").Equal(got.TotalSales), got.TotalSales.String())
	assert.True(t, usd("200").Equal(got.AverageSales), got.AverageSales.String())
	assert.Equal(t, 3, got.Count)

	all := sales.GetSalesSummary(salesFixture(), entity.AllStores)
	assert.Equal(t, got.Count, all.Count)
	assert.True(t, got.TotalSales.Equal(all.TotalSales))
}

func TestGetSalesSummary_PorTienda(t *testing.T) {
	got := sales.GetSalesSummary(salesFixture(), "store-1")
	assert.True(t, usd("300").Equal(got.TotalSales))
	assert.True(t, usd("150").Equal(got.AverageSales))
	assert.Equal(t, 2, got.Count)
}

func TestGetSalesSummary_SinVentas(t *testing.T) {
	got := sales.GetSalesSummary(nil, "")
	assert.True(t, got.TotalSales.IsZero())
	assert.True(t, got.AverageSales.IsZero(), "sin ventas el promedio es cero")
	assert.Equal(t, 0, got.Count)

	got = sales.GetSalesSummary(salesFixture(), "store-9")
	assert.Equal(t, 0, got.Count)
	assert.True(t, got.AverageSales.IsZero())
}

func TestGetSalesSummary_Redondeo(t *testing.T) {
	in := []entity.SaleRecord{
		{StoreID: "a", TotalUSD: usd("10")},
		{StoreID: "a", TotalUSD: usd("10")},
		{StoreID: "a", TotalUSD: usd("10.005")},
	}
	got := sales.GetSalesSummary(in, "")
	assert.Equal(t, "30.01", got.TotalSales.StringFixed(2))
	// 30.005 / 3 = 10.001666…
	assert.Equal(t, "10.00", got.AverageSales.StringFixed(2))
}

func TestGetFinancingSummary(t *testing.T) {
	got := sales.GetFinancingSummary(salesFixture(), "")
	assert.Equal(t, 1, got.Krece.Count)
	assert.True(t, usd("50").Equal(got.Krece.InitialUSD))
	assert.True(t, usd("150").Equal(got.Krece.FinancedUSD))
	assert.Equal(t, 1, got.Cashea.Count)
	assert.True(t, usd("180").Equal(got.Cashea.FinancedUSD))

	store1 := sales.GetFinancingSummary(salesFixture(), "store-1")
	assert.Equal(t, 0, store1.Cashea.Count)
	assert.True(t, store1.Cashea.FinancedUSD.IsZero())
}

func TestToBolivars(t *testing.T) {
	assert.Equal(t, "3645.00", sales.ToBolivars(usd("100"), usd("36.45")).StringFixed(2))
	assert.True(t, sales.ToBolivars(usd("100"), decimal.Zero).IsZero())
	assert.True(t, sales.ToBolivars(usd("100"), usd("-1")).IsZero())
}

func TestGetSalesSummary_RedondeoEmpatesHaciaArriba(t *testing.T) {
	devolucion := []entity.SaleRecord{{ID: "s-1", StoreID: "store-1", TotalUSD: usd("-2.345")}}
	got := sales.GetSalesSummary(devolucion, "")
	assert.Equal(t, "-2.34", got.TotalSales.StringFixed(2))
	assert.Equal(t, "-2.34", got.AverageSales.StringFixed(2))

	venta := []entity.SaleRecord{{ID: "s-2", StoreID: "store-1", TotalUSD: usd("2.345")}}
	assert.Equal(t, "2.35", sales.GetSalesSummary(venta, "").TotalSales.StringFixed(2))
}

func TestToBolivars_RedondeoEmpatesHaciaArriba(t *testing.T) {
	// -0.8225 × 2 = -1.645
	assert.Equal(t, "-1.64", sales.ToBolivars(usd("-0.8225"), usd("2")).StringFixed(2))
	assert.Equal(t, "1.65", sales.ToBolivars(usd("0.8225"), usd("2")).StringFixed(2))
}
