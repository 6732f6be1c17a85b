package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate tasa oficial (BCV) de bolívares por dólar.
type ExchangeRate struct {
	Currency    string // "USD"
	Rate        decimal.Decimal
	Source      string // "BCV"
	EffectiveAt time.Time
}
