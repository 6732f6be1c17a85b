package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

var _ repository.ExchangeRateRepository = (*ExchangeRateRepo)(nil)

// ExchangeRateRepo lee la última tasa BCV registrada por el proceso externo de actualización.
type ExchangeRateRepo struct {
	q Querier
}

// NewExchangeRateRepository construye el adaptador.
func NewExchangeRateRepository(q Querier) *ExchangeRateRepo {
	return &ExchangeRateRepo{q: q}
}

// Latest devuelve la tasa más reciente para currency, o (nil, nil) si no existe.
func (r *ExchangeRateRepo) Latest(ctx context.Context, currency string) (*entity.ExchangeRate, error) {
	const query = `
	SELECT currency, rate, COALESCE(source, 'BCV'), effective_at
	FROM exchange_rates
	WHERE currency = $1
	ORDER BY effective_at DESC
	LIMIT 1`

	var rate entity.ExchangeRate
	err := r.q.QueryRow(ctx, query, currency).Scan(&rate.Currency, &rate.Rate, &rate.Source, &rate.EffectiveAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("exchange_rates.Latest: %w", err)
	}
	return &rate, nil
}
