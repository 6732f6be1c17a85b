package inventory

// Clases visuales del nivel de stock por tienda.
const (
	classOutOfStock = "text-red-600"
	classInStock    = "text-emerald-600"
	textOutOfStock  = "Sin stock"
)

// StockVisuals estado visual de una cantidad en tienda.
type StockVisuals struct {
	QuantityClass string `json:"quantity_class"`
	StatusText    string `json:"status_text"`
}

// GetStoreStockVisuals distingue solo dos niveles: sin stock y con stock.
// minQty se acepta pero no interviene; no existe un nivel intermedio de "stock bajo".
func GetStoreStockVisuals(qty, minQty int) StockVisuals {
	if clampQty(qty) == 0 {
		return StockVisuals{QuantityClass: classOutOfStock, StatusText: textOutOfStock}
	}
	return StockVisuals{QuantityClass: classInStock}
}
