package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// ProviderSummary ventas financiadas por un proveedor (Krece o Cashea).
type ProviderSummary struct {
	Count       int             `json:"count"`
	InitialUSD  decimal.Decimal `json:"initial_usd"`  // cuota inicial cobrada en tienda
	FinancedUSD decimal.Decimal `json:"financed_usd"` // monto que cubre el proveedor
}

// FinancingSummary financiamiento agregado por proveedor.
type FinancingSummary struct {
	Krece  ProviderSummary `json:"krece"`
	Cashea ProviderSummary `json:"cashea"`
}

// GetFinancingSummary agrega los montos de financiamiento de las ventas pagadas con Krece o Cashea.
// El filtro de tienda funciona igual que en GetSalesSummary.
func GetFinancingSummary(sales []entity.SaleRecord, storeID string) FinancingSummary {
	var out FinancingSummary
	out.Krece.InitialUSD, out.Krece.FinancedUSD = decimal.Zero, decimal.Zero
	out.Cashea.InitialUSD, out.Cashea.FinancedUSD = decimal.Zero, decimal.Zero

	for _, s := range filterByStore(sales, storeID) {
		switch s.PaymentMethod {
		case entity.PaymentMethodKrece:
			out.Krece.Count++
			out.Krece.InitialUSD = out.Krece.InitialUSD.Add(s.KreceInitialUSD)
			out.Krece.FinancedUSD = out.Krece.FinancedUSD.Add(s.KreceFinancedUSD)
		case entity.PaymentMethodCashea:
			out.Cashea.Count++
			out.Cashea.InitialUSD = out.Cashea.InitialUSD.Add(s.CasheaInitialUSD)
			out.Cashea.FinancedUSD = out.Cashea.FinancedUSD.Add(s.CasheaFinancedUSD)
		}
	}

	out.Krece.InitialUSD = round2(out.Krece.InitialUSD)
	out.Krece.FinancedUSD = round2(out.Krece.FinancedUSD)
	out.Cashea.InitialUSD = round2(out.Cashea.InitialUSD)
	out.Cashea.FinancedUSD = round2(out.Cashea.FinancedUSD)
	return out
}

// ToBolivars convierte un monto en USD a bolívares con la tasa BCV.
// Una tasa cero o negativa devuelve cero.
func ToBolivars(amountUSD, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return round2(amountUSD.Mul(rate))
}
