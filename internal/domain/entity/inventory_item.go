package entity

import "github.com/shopspring/decimal"

// InventoryProduct datos del producto que acompañan a cada fila de inventario.
type InventoryProduct struct {
	Name         string
	SKU          string
	Category     string          // phones, accessories, technical_service (vacío = sin categoría)
	SalePriceUSD decimal.Decimal // precio de venta en USD; cero si no está definido
}

// InventoryStoreRef nombre de la tienda asociada a la fila de inventario.
type InventoryStoreRef struct {
	Name string
}

// InventoryItem representa el stock de un producto en una tienda.
// Qty puede llegar negativa desde el backend; los motores de agregación la acotan a cero al leerla.
type InventoryItem struct {
	ID        string
	ProductID string
	StoreID   string
	Qty       int
	MinQty    int
	Product   InventoryProduct
	Store     InventoryStoreRef
}
