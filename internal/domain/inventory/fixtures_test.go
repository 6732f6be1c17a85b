package inventory_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidas
//
//	SKU-001 (phones, 100 USD):      store-1 qty 5 / min 3, store-2 qty 1 / min 2
//	SKU-002 (accessories, 25 USD):  store-1 qty 4 / min 1, store-3 qty 0 / min 1
// ──────────────────────────────────────────────────────────────────────────────

func testStores() []entity.Store {
	return []entity.Store{
		{ID: "store-1", Name: "Tienda Norte"},
		{ID: "store-2", Name: "Tienda Centro"},
		{ID: "store-3", Name: "Tienda Sur"},
	}
}

func phone() entity.InventoryProduct {
	return entity.InventoryProduct{Name: "iPhone 13", SKU: "SKU-001", Category: "phones", SalePriceUSD: decimal.NewFromInt(100)}
}

func charger() entity.InventoryProduct {
	return entity.InventoryProduct{Name: "Cargador USB-C", SKU: "SKU-002", Category: "accessories", SalePriceUSD: decimal.NewFromInt(25)}
}

func testInventory() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "inv-1", ProductID: "p-1", StoreID: "store-1", Qty: 5, MinQty: 3, Product: phone(), Store: entity.InventoryStoreRef{Name: "Tienda Norte"}},
		{ID: "inv-2", ProductID: "p-1", StoreID: "store-2", Qty: 1, MinQty: 2, Product: phone(), Store: entity.InventoryStoreRef{Name: "Tienda Centro"}},
		{ID: "inv-3", ProductID: "p-2", StoreID: "store-1", Qty: 4, MinQty: 1, Product: charger(), Store: entity.InventoryStoreRef{Name: "Tienda Norte"}},
		{ID: "inv-4", ProductID: "p-2", StoreID: "store-3", Qty: 0, MinQty: 1, Product: charger(), Store: entity.InventoryStoreRef{Name: "Tienda Sur"}},
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !decimal.RequireFromString(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("decimal esperado %s, obtenido %s", want, got.String()), msgAndArgs...)
	}
}
