package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// ListByCompany lista las tiendas de la empresa ordenadas por nombre.
func (r *StoreRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Store, error) {
	query := `
		SELECT id, company_id, name, created_at
		FROM stores WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Store, 0)
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene una tienda de la empresa. Devuelve (nil, nil) si no existe;
// un id que no es UUID no puede existir y no llega a la base.
func (r *StoreRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Store, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `
		SELECT id, company_id, name, created_at
		FROM stores WHERE company_id = $1 AND id = $2`
	var s entity.Store
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(&s.ID, &s.CompanyID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}
