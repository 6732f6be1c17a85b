package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/domain/inventory"
)

// InventoryListRequest query de GET /api/inventory.
type InventoryListRequest struct {
	StoreID   string `query:"store_id"`
	Sort      string `query:"sort"` // name|sku|qty|price|category|store
	Direction string `query:"dir"`  // asc|desc
}

// InventoryItemResponse fila de inventario con su estado visual.
type InventoryItemResponse struct {
	ID            string                 `json:"id"`
	ProductID     string                 `json:"product_id"`
	StoreID       string                 `json:"store_id"`
	StoreName     string                 `json:"store_name"`
	Name          string                 `json:"name"`
	SKU           string                 `json:"sku"`
	Category      string                 `json:"category"`
	CategoryLabel string                 `json:"category_label"`
	SalePriceUSD  decimal.Decimal        `json:"sale_price_usd"`
	Qty           int                    `json:"qty"`
	MinQty        int                    `json:"min_qty"`
	Visuals       inventory.StockVisuals `json:"visuals"`
}

// InventoryListResponse listado ordenado de inventario.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}

// InventoryStatsResponse respuesta de GET /api/inventory/stats.
type InventoryStatsResponse struct {
	Stats      inventory.FilteredInventoryStats `json:"stats"`
	Categories []inventory.CategoryStat         `json:"categories"`
}
