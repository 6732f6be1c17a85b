package dto

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
