// Package sales contiene los cálculos puros sobre ventas: totales, promedios,
// financiamiento Krece/Cashea y conversión a bolívares con la tasa BCV.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// Summary total y promedio de ventas en USD.
type Summary struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	AverageSales decimal.Decimal `json:"average_sales"`
	Count        int             `json:"count"`
}

// GetSalesSummary suma y promedia TotalUSD. storeID vacío o "all" incluye todas las tiendas.
// Sin ventas el promedio es cero.
func GetSalesSummary(sales []entity.SaleRecord, storeID string) Summary {
	filtered := filterByStore(sales, storeID)

	total := decimal.Zero
	for _, s := range filtered {
		total = total.Add(s.TotalUSD)
	}

	average := decimal.Zero
	if n := len(filtered); n > 0 {
		average = total.Div(decimal.NewFromInt(int64(n)))
	}
	return Summary{
		TotalSales:   round2(total),
		AverageSales: round2(average),
		Count:        len(filtered),
	}
}

func filterByStore(sales []entity.SaleRecord, storeID string) []entity.SaleRecord {
	if storeID == "" || storeID == entity.AllStores {
		return sales
	}
	out := make([]entity.SaleRecord, 0, len(sales))
	for _, s := range sales {
		if s.StoreID == storeID {
			out = append(out, s)
		}
	}
	return out
}
