package sales

import "github.com/shopspring/decimal"

var half = decimal.New(5, -1)

// round2 redondea a 2 decimales con los empates hacia +∞: -2.345 → -2.34, 2.345 → 2.35.
// Es el mismo resultado que Math.round(x*100)/100 en el frontend, también con montos negativos (devoluciones).
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}
