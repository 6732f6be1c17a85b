package repository

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// ExchangeRateRepository tasa de cambio vigente. Devuelve (nil, nil) si no hay tasa registrada.
type ExchangeRateRepository interface {
	Latest(ctx context.Context, currency string) (*entity.ExchangeRate, error)
}
