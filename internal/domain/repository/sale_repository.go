package repository

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// SaleRepository consultas de solo lectura sobre ventas.
type SaleRepository interface {
	// ListByPeriod ventas de la empresa con created_at en [start, end].
	// storeID vacío o "all" incluye todas las tiendas.
	ListByPeriod(ctx context.Context, companyID, storeID string, start, end time.Time) ([]entity.SaleRecord, error)
}
