package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-pos/internal/domain/inventory"
)

func TestGetStoreStockVisuals(t *testing.T) {
	assert.Equal(t,
		inventory.StockVisuals{QuantityClass: "text-red-600", StatusText: "Sin stock"},
		inventory.GetStoreStockVisuals(0, 5))
	assert.Equal(t,
		inventory.StockVisuals{QuantityClass: "text-emerald-600", StatusText: ""},
		inventory.GetStoreStockVisuals(6, 5))
}

// Solo hay dos niveles: una cantidad bajo el mínimo sigue mostrándose como "con stock".
func TestGetStoreStockVisuals_SinNivelIntermedio(t *testing.T) {
	assert.Equal(t, "text-emerald-600", inventory.GetStoreStockVisuals(2, 5).QuantityClass)
	assert.Equal(t, "Sin stock", inventory.GetStoreStockVisuals(-1, 5).StatusText)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Teléfonos", inventory.CategoryLabel("phones"))
	assert.Equal(t, "Accesorios", inventory.CategoryLabel("accessories"))
	assert.Equal(t, "Servicio Técnico", inventory.CategoryLabel("technical_service"))
	assert.Equal(t, "Sin categoría", inventory.CategoryLabel(""))
	assert.Equal(t, "tablets", inventory.CategoryLabel("tablets"))
	assert.Len(t, inventory.DefaultCategories(), 3)
}
