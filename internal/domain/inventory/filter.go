package inventory

import "github.com/jhoicas/retail-pos/internal/domain/entity"

// filterByStore devuelve solo las filas de storeID. Vacío o "all" no filtra.
func filterByStore(items []entity.InventoryItem, storeID string) []entity.InventoryItem {
	if storeID == "" || storeID == entity.AllStores {
		return items
	}
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.StoreID == storeID {
			out = append(out, it)
		}
	}
	return out
}

func filterByCategory(items []entity.InventoryItem, category string) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0)
	for _, it := range items {
		if it.Product.Category == category {
			out = append(out, it)
		}
	}
	return out
}
