package repository

import (
	"context"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
)

// StoreRepository define el puerto de lectura para tiendas (DIP).
type StoreRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.Store, error)
	GetByID(ctx context.Context, companyID, id string) (*entity.Store, error)
}
