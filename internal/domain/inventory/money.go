package inventory

import "github.com/shopspring/decimal"

// Los montos se acumulan sin redondear y se redondean una sola vez a 2 decimales al agregar.
// Cantidades y precios negativos se leen como cero; la fila original nunca se modifica.

func clampQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}

func clampPrice(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// lineValue qty × precio de venta, ambos acotados a cero.
func lineValue(qty int, price decimal.Decimal) decimal.Decimal {
	return clampPrice(price).Mul(decimal.NewFromInt(int64(clampQty(qty))))
}

var half = decimal.New(5, -1)

// round2 redondea a 2 decimales con los empates hacia +∞, igual que Math.round(x*100)/100.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

// isLowStock: 0 < qty ≤ min_qty. Sin stock (qty == 0) no cuenta como stock bajo.
func isLowStock(qty, minQty int) bool {
	qty, minQty = clampQty(qty), clampQty(minQty)
	return qty > 0 && qty <= minQty
}

// isCriticalStock: 0 < qty ≤ max(1, floor(min_qty * 0.5)).
func isCriticalStock(qty, minQty int) bool {
	qty, minQty = clampQty(qty), clampQty(minQty)
	threshold := minQty / 2
	if threshold < 1 {
		threshold = 1
	}
	return qty > 0 && qty <= threshold
}
