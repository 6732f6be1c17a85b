package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago con financiamiento de terceros.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodKrece  = "krece"
	PaymentMethodCashea = "cashea"
)

// SaleRecord venta registrada por el backend. Solo se usa para sumarizar; nunca se modifica.
type SaleRecord struct {
	ID            string
	StoreID       string
	TotalUSD      decimal.Decimal
	PaymentMethod string
	// Montos de financiamiento (cero si la venta no fue financiada)
	KreceInitialUSD   decimal.Decimal
	KreceFinancedUSD  decimal.Decimal
	CasheaInitialUSD  decimal.Decimal
	CasheaFinancedUSD decimal.Decimal
	CreatedAt         time.Time
}
