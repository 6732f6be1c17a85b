package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo consultas de solo lectura sobre ventas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// ListByPeriod ventas del período. Los montos nulos se leen como cero.
func (r *SaleRepo) ListByPeriod(ctx context.Context, companyID, storeID string, start, end time.Time) ([]entity.SaleRecord, error) {
	const query = `
	SELECT
	    s.id,
	    s.store_id,
	    COALESCE(s.total_usd, 0),
	    COALESCE(s.payment_method, ''),
	    COALESCE(s.krece_initial_amount_usd,  0),
	    COALESCE(s.krece_financed_amount_usd, 0),
	    COALESCE(s.cashea_initial_amount_usd,  0),
	    COALESCE(s.cashea_financed_amount_usd, 0),
	    s.created_at
	FROM sales s
	WHERE s.company_id = $1
	  AND ($2 = '' OR $2 = 'all' OR s.store_id::TEXT = $2)
	  AND s.created_at BETWEEN $3 AND $4
	ORDER BY s.created_at`

	rows, err := r.q.Query(ctx, query, companyID, storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales.ListByPeriod: %w", err)
	}
	defer rows.Close()

	list := make([]entity.SaleRecord, 0)
	for rows.Next() {
		var s entity.SaleRecord
		if err := rows.Scan(
			&s.ID,
			&s.StoreID,
			&s.TotalUSD,
			&s.PaymentMethod,
			&s.KreceInitialUSD,
			&s.KreceFinancedUSD,
			&s.CasheaInitialUSD,
			&s.CasheaFinancedUSD,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sales.ListByPeriod scan: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales.ListByPeriod rows: %w", err)
	}
	return list, nil
}
