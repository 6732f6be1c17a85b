package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// AggregatedProduct totales de un producto (por product_id) sobre todas sus filas de inventario.
type AggregatedProduct struct {
	ProductID        string          `json:"product_id"`
	Product          ProductInfo     `json:"product"`
	TotalQty         int             `json:"total_qty"`
	MinQty           int             `json:"min_qty"` // el mayor min_qty visto
	HasLowStock      bool            `json:"has_low_stock"`
	HasCriticalStock bool            `json:"has_critical_stock"`
	TotalValue       decimal.Decimal `json:"total_value"`
	StoreIDs         []string        `json:"store_ids"`
}

// FilteredInventoryStats resumen del inventario, opcionalmente acotado a una tienda.
type FilteredInventoryStats struct {
	TotalValue    decimal.Decimal     `json:"total_value"`
	TotalProducts int                 `json:"total_products"`
	OutOfStock    int                 `json:"out_of_stock"`
	LowStock      int                 `json:"low_stock"`
	CriticalStock int                 `json:"critical_stock"`
	TotalStock    int                 `json:"total_stock"`
	TotalStores   int                 `json:"total_stores"`
	Products      []AggregatedProduct `json:"products"`
}

// CategoryStat totales de una categoría. Nunca se emite con ProductCount == 0.
type CategoryStat struct {
	Label        string          `json:"label"`
	Value        string          `json:"value"`
	TotalValue   decimal.Decimal `json:"total_value"`
	TotalStock   int             `json:"total_stock"`
	ProductCount int             `json:"product_count"`
}

// GroupInventoryByProduct agrupa por product_id. Los indicadores de stock bajo y crítico
// se evalúan fila por fila y quedan en true una vez activados.
func GroupInventoryByProduct(items []entity.InventoryItem) []AggregatedProduct {
	products := make([]AggregatedProduct, 0)
	index := make(map[string]int)
	stores := make([]map[string]bool, 0)
	values := make([]decimal.Decimal, 0)

	for _, item := range items {
		i, ok := index[item.ProductID]
		if !ok {
			i = len(products)
			index[item.ProductID] = i
			products = append(products, AggregatedProduct{
				ProductID: item.ProductID,
				Product: ProductInfo{
					ID:           item.ProductID,
					Name:         item.Product.Name,
					SKU:          item.Product.SKU,
					Category:     item.Product.Category,
					SalePriceUSD: item.Product.SalePriceUSD,
				},
				StoreIDs: []string{},
			})
			stores = append(stores, make(map[string]bool))
			values = append(values, decimal.Zero)
		}

		p := &products[i]
		qty := clampQty(item.Qty)
		minQty := clampQty(item.MinQty)
		p.TotalQty += qty
		if minQty > p.MinQty {
			p.MinQty = minQty
		}
		values[i] = values[i].Add(lineValue(qty, item.Product.SalePriceUSD))
		if isLowStock(qty, minQty) {
			p.HasLowStock = true
		}
		if isCriticalStock(qty, minQty) {
			p.HasCriticalStock = true
		}
		if !stores[i][item.StoreID] {
			stores[i][item.StoreID] = true
			p.StoreIDs = append(p.StoreIDs, item.StoreID)
		}
	}

	for i := range products {
		products[i].TotalValue = round2(values[i])
	}
	return products
}

// CalculateFilteredStats calcula el resumen del inventario.
//
// storeFilter ("" o "all" = sin filtro) restringe las filas a una tienda antes de agregar.
// TotalValue y TotalStock se suman sobre las filas filtradas, no sobre los productos agregados.
// TotalStores es 1 con un filtro de tienda activo; sin filtro, totalStores si selectedStore es
// "all" y 1 en otro caso.
func CalculateFilteredStats(inventory []entity.InventoryItem, totalStores int, selectedStore, storeFilter string) FilteredInventoryStats {
	filtered := filterByStore(inventory, storeFilter)
	products := GroupInventoryByProduct(filtered)

	value := decimal.Zero
	stock := 0
	for _, it := range filtered {
		value = value.Add(lineValue(it.Qty, it.Product.SalePriceUSD))
		stock += clampQty(it.Qty)
	}

	stats := FilteredInventoryStats{
		TotalValue:    round2(value),
		TotalProducts: len(products),
		TotalStock:    stock,
		Products:      products,
	}
	for _, p := range products {
		if p.TotalQty == 0 {
			stats.OutOfStock++
			continue
		}
		if p.HasLowStock {
			stats.LowStock++
		}
		if p.HasCriticalStock {
			stats.CriticalStock++
		}
	}

	switch {
	case storeFilter != "" && storeFilter != entity.AllStores:
		stats.TotalStores = 1
	case selectedStore == entity.AllStores:
		stats.TotalStores = totalStores
	default:
		stats.TotalStores = 1
	}
	return stats
}

// GetCategoryStats totales por categoría. Los productos salen de stats.Products y las filas
// de inventory, filtradas de nuevo por storeFilter. Las categorías sin productos se omiten,
// así que el resultado puede tener menos entradas que categories.
func GetCategoryStats(stats FilteredInventoryStats, inventory []entity.InventoryItem, categories []CategoryDefinition, storeFilter string) []CategoryStat {
	rows := filterByStore(inventory, storeFilter)
	out := make([]CategoryStat, 0, len(categories))

	for _, cat := range categories {
		count := 0
		for _, p := range stats.Products {
			if p.Product.Category == cat.Value {
				count++
			}
		}
		if count == 0 {
			continue
		}

		value := decimal.Zero
		stock := 0
		for _, it := range filterByCategory(rows, cat.Value) {
			value = value.Add(lineValue(it.Qty, it.Product.SalePriceUSD))
			stock += clampQty(it.Qty)
		}
		out = append(out, CategoryStat{
			Label:        cat.Label,
			Value:        cat.Value,
			TotalValue:   round2(value),
			TotalStock:   stock,
			ProductCount: count,
		})
	}
	return out
}
