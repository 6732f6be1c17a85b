package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// SortField campo por el que se ordena el listado de inventario.
type SortField string

const (
	SortByName     SortField = "name"
	SortBySKU      SortField = "sku"
	SortByQty      SortField = "qty"
	SortByPrice    SortField = "price"
	SortByCategory SortField = "category"
	SortByStore    SortField = "store"
)

// SortDirection dirección del ordenamiento.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortField valida el campo recibido desde la API.
func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(s); f {
	case SortByName, SortBySKU, SortByQty, SortByPrice, SortByCategory, SortByStore:
		return f, true
	}
	return "", false
}

// ParseSortDirection valida la dirección recibida desde la API.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch d := SortDirection(s); d {
	case SortAsc, SortDesc:
		return d, true
	}
	return "", false
}

// SortInventoryItems devuelve una copia ordenada de items; la entrada no se modifica.
// Los campos de texto se comparan en minúsculas y la categoría por su etiqueta.
// Los empates conservan el orden de entrada.
func SortInventoryItems(items []entity.InventoryItem, field SortField, dir SortDirection) []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)

	lower := cases.Lower(language.Spanish)
	text := func(s string) string { return lower.String(s) }

	compare := func(a, b entity.InventoryItem) int {
		switch field {
		case SortByName:
			return strings.Compare(text(a.Product.Name), text(b.Product.Name))
		case SortBySKU:
			return strings.Compare(text(a.Product.SKU), text(b.Product.SKU))
		case SortByQty:
			return compareInt(a.Qty, b.Qty)
		case SortByPrice:
			return a.Product.SalePriceUSD.Cmp(b.Product.SalePriceUSD)
		case SortByCategory:
			return strings.Compare(text(CategoryLabel(a.Product.Category)), text(CategoryLabel(b.Product.Category)))
		case SortByStore:
			return strings.Compare(text(a.Store.Name), text(b.Store.Name))
		}
		return 0
	}

	sign := 1
	if dir == SortDesc {
		sign = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sign*compare(out[i], out[j]) < 0
	})
	return out
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
