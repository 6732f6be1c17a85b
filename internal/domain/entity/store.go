package entity

import "time"

// Store representa una tienda física de la empresa (multi-tienda).
type Store struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}

// AllStores valor de filtro que representa "todas las tiendas".
const AllStores = "all"
