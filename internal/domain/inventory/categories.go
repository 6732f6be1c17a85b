package inventory

// Códigos de categoría conocidos (vocabulario cerrado).
const (
	CategoryPhones           = "phones"
	CategoryAccessories      = "accessories"
	CategoryTechnicalService = "technical_service"
)

// uncategorizedLabel etiqueta para productos sin categoría.
const uncategorizedLabel = "Sin categoría"

// CategoryDefinition par código/etiqueta usado para construir estadísticas por categoría.
type CategoryDefinition struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var categoryLabels = map[string]string{
	CategoryPhones:           "Teléfonos",
	CategoryAccessories:      "Accesorios",
	CategoryTechnicalService: "Servicio Técnico",
}

// DefaultCategories devuelve las categorías conocidas en el orden en que se muestran.
func DefaultCategories() []CategoryDefinition {
	return []CategoryDefinition{
		{Value: CategoryPhones, Label: categoryLabels[CategoryPhones]},
		{Value: CategoryAccessories, Label: categoryLabels[CategoryAccessories]},
		{Value: CategoryTechnicalService, Label: categoryLabels[CategoryTechnicalService]},
	}
}

// CategoryLabel resuelve la etiqueta legible de un código de categoría.
// Vacío devuelve "Sin categoría"; un código desconocido se devuelve tal cual.
func CategoryLabel(code string) string {
	if code == "" {
		return uncategorizedLabel
	}
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}
