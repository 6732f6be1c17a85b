package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo lectura del inventario por tienda sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// inventoryRow fila tal como sale de la consulta, antes de validarla.
type inventoryRow struct {
	ID        string
	ProductID string
	StoreID   string
	Qty       int
	MinQty    int
	Name      string
	SKU       string
	Category  string
	Price     decimal.Decimal
	StoreName string
}

// toInventoryItem convierte la fila en entidad acotando cantidades y precio a cero.
func (r inventoryRow) toInventoryItem() entity.InventoryItem {
	return entity.InventoryItem{
		ID:        r.ID,
		ProductID: r.ProductID,
		StoreID:   r.StoreID,
		Qty:       max(r.Qty, 0),
		MinQty:    max(r.MinQty, 0),
		Product: entity.InventoryProduct{
			Name:         r.Name,
			SKU:          r.SKU,
			Category:     r.Category,
			SalePriceUSD: decimal.Max(r.Price, decimal.Zero),
		},
		Store: entity.InventoryStoreRef{Name: r.StoreName},
	}
}

// ListByCompany devuelve el inventario de la empresa. Los INNER JOIN descartan filas
// cuyo producto o tienda ya no existe.
func (r *InventoryRepo) ListByCompany(ctx context.Context, companyID, storeID string) ([]entity.InventoryItem, error) {
	query := `
		SELECT
			i.id,
			i.product_id,
			i.store_id,
			COALESCE(i.qty, 0),
			COALESCE(i.min_qty, 0),
			p.name,
			COALESCE(p.sku, ''),
			COALESCE(p.category, ''),
			COALESCE(p.sale_price_usd, 0),
			s.name
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN stores   s ON s.id = i.store_id
		WHERE s.company_id = $1
		  AND ($2 = '' OR $2 = 'all' OR i.store_id::TEXT = $2)
		ORDER BY p.name, s.name`

	rows, err := r.q.Query(ctx, query, companyID, storeID)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListByCompany: %w", err)
	}
	defer rows.Close()

	items := make([]entity.InventoryItem, 0)
	for rows.Next() {
		var row inventoryRow
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.StoreID,
			&row.Qty, &row.MinQty,
			&row.Name, &row.SKU, &row.Category, &row.Price,
			&row.StoreName,
		); err != nil {
			return nil, fmt.Errorf("inventory.ListByCompany scan: %w", err)
		}
		items = append(items, row.toInventoryItem())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory.ListByCompany rows: %w", err)
	}
	return items, nil
}
