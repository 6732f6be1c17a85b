package repository

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// InventoryRepository lectura de filas de inventario con su producto y tienda (DIP).
// Las filas sin producto o sin tienda no se devuelven.
type InventoryRepository interface {
	// ListByCompany devuelve el inventario de la empresa; storeID vacío o "all" incluye todas las tiendas.
	ListByCompany(ctx context.Context, companyID, storeID string) ([]entity.InventoryItem, error)
}
