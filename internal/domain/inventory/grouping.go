package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// ProductInfo datos del producto expuestos en las vistas agregadas.
type ProductInfo struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	SalePriceUSD decimal.Decimal `json:"sale_price_usd"`
}

// StoreInventorySummary stock de un SKU en una tienda dentro de un grupo.
// Las entradas sintéticas (tienda sin fila de inventario) tienen InventoryID vacío y HasInventory=false.
type StoreInventorySummary struct {
	StoreID      string `json:"store_id"`
	StoreName    string `json:"store_name"`
	Qty          int    `json:"qty"`
	MinQty       int    `json:"min_qty"`
	InventoryID  string `json:"inventory_id"`
	ProductID    string `json:"product_id"`
	HasInventory bool   `json:"has_inventory"`
}

// GroupedProductBySku un SKU con su stock en todas las tiendas conocidas.
type GroupedProductBySku struct {
	Product     ProductInfo             `json:"product"`
	Stores      []StoreInventorySummary `json:"stores"`
	TotalQty    int                     `json:"total_qty"`
	TotalValue  decimal.Decimal         `json:"total_value"`
	HasLowStock bool                    `json:"has_low_stock"`
}

// GroupProductsBySku agrupa las filas de inventario por SKU (no por product_id).
//
// Cada grupo termina con exactamente una entrada por tienda de stores: las tiendas sin fila
// reciben una entrada en cero. La lista de tiendas de cada grupo se ordena por nombre
// con intercalación en español. Los grupos conservan el orden de primera aparición.
func GroupProductsBySku(items []entity.InventoryItem, stores []entity.Store) []GroupedProductBySku {
	groups := make([]GroupedProductBySku, 0)
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	values := make([]decimal.Decimal, 0)

	for _, item := range items {
		sku := item.Product.SKU
		i, ok := index[sku]
		if !ok {
			i = len(groups)
			index[sku] = i
			seen[sku] = make(map[string]bool)
			groups = append(groups, GroupedProductBySku{
				Product: ProductInfo{
					ID:           item.ProductID,
					Name:         item.Product.Name,
					SKU:          sku,
					Category:     item.Product.Category,
					SalePriceUSD: item.Product.SalePriceUSD,
				},
				Stores:     []StoreInventorySummary{},
				TotalValue: decimal.Zero,
			})
			values = append(values, decimal.Zero)
		}

		qty := clampQty(item.Qty)
		minQty := clampQty(item.MinQty)
		g := &groups[i]
		g.Stores = append(g.Stores, StoreInventorySummary{
			StoreID:      item.StoreID,
			StoreName:    item.Store.Name,
			Qty:          qty,
			MinQty:       minQty,
			InventoryID:  item.ID,
			ProductID:    item.ProductID,
			HasInventory: qty > 0,
		})
		seen[sku][item.StoreID] = true
		g.TotalQty += qty
		values[i] = values[i].Add(lineValue(qty, item.Product.SalePriceUSD))
		if isLowStock(qty, minQty) {
			g.HasLowStock = true
		}
	}

	col := collate.New(language.Spanish)
	for i := range groups {
		g := &groups[i]
		for _, st := range stores {
			if seen[g.Product.SKU][st.ID] {
				continue
			}
			g.Stores = append(g.Stores, StoreInventorySummary{
				StoreID:   st.ID,
				StoreName: st.Name,
				ProductID: g.Product.ID,
			})
		}
		sort.SliceStable(g.Stores, func(a, b int) bool {
			return col.CompareString(g.Stores[a].StoreName, g.Stores[b].StoreName) < 0
		})
		g.TotalValue = round2(values[i])
	}
	return groups
}
