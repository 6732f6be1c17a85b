package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/inventory"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
)

// UseCase vistas de solo lectura del inventario multi-tienda: listado ordenado,
// agrupación por SKU y estadísticas. Toda la agregación la hace el paquete de dominio.
type UseCase struct {
	inventoryRepo repository.InventoryRepository
	storeRepo     repository.StoreRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(inventoryRepo repository.InventoryRepository, storeRepo repository.StoreRepository) *UseCase {
	return &UseCase{inventoryRepo: inventoryRepo, storeRepo: storeRepo}
}

// List devuelve el inventario ordenado, con el estado visual de cada fila.
// Sin sort/dir se ordena por nombre ascendente.
func (uc *UseCase) List(ctx context.Context, companyID string, req dto.InventoryListRequest) (*dto.InventoryListResponse, error) {
	field, dir, err := parseSort(req.Sort, req.Direction)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureStore(ctx, companyID, req.StoreID); err != nil {
		return nil, err
	}

	items, err := uc.inventoryRepo.ListByCompany(ctx, companyID, req.StoreID)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}

	sorted := inventory.SortInventoryItems(items, field, dir)
	out := make([]dto.InventoryItemResponse, 0, len(sorted))
	for _, it := range sorted {
		out = append(out, toItemResponse(it))
	}
	return &dto.InventoryListResponse{Items: out, Total: len(out)}, nil
}

// ListStores tiendas de la empresa ordenadas por nombre.
func (uc *UseCase) ListStores(ctx context.Context, companyID string) ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// Grouped agrupa el inventario de todas las tiendas por SKU; cada grupo lista todas las tiendas
// de la empresa, con cantidad cero donde el producto no tiene inventario.
func (uc *UseCase) Grouped(ctx context.Context, companyID string) ([]inventory.GroupedProductBySku, error) {
	stores, err := uc.storeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	items, err := uc.inventoryRepo.ListByCompany(ctx, companyID, entity.AllStores)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}
	return inventory.GroupProductsBySku(items, stores), nil
}

// Stats calcula el resumen del inventario y sus totales por categoría.
// storeFilter acota las filas; selectedStore ("" = "all") solo afecta TotalStores.
func (uc *UseCase) Stats(ctx context.Context, companyID, storeFilter, selectedStore string) (*dto.InventoryStatsResponse, error) {
	if err := uc.ensureStore(ctx, companyID, storeFilter); err != nil {
		return nil, err
	}
	if selectedStore == "" {
		selectedStore = entity.AllStores
	}

	stores, err := uc.storeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	items, err := uc.inventoryRepo.ListByCompany(ctx, companyID, entity.AllStores)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}

	stats := inventory.CalculateFilteredStats(items, len(stores), selectedStore, storeFilter)
	categories := inventory.GetCategoryStats(stats, items, inventory.DefaultCategories(), storeFilter)
	return &dto.InventoryStatsResponse{Stats: stats, Categories: categories}, nil
}

// ensureStore verifica que la tienda pertenezca a la empresa. "" y "all" no se verifican.
func (uc *UseCase) ensureStore(ctx context.Context, companyID, storeID string) error {
	if storeID == "" || storeID == entity.AllStores {
		return nil
	}
	s, err := uc.storeRepo.GetByID(ctx, companyID, storeID)
	if err != nil {
		return fmt.Errorf("buscar tienda: %w", err)
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return nil
}

func parseSort(sort, direction string) (inventory.SortField, inventory.SortDirection, error) {
	if sort == "" {
		sort = string(inventory.SortByName)
	}
	if direction == "" {
		direction = string(inventory.SortAsc)
	}
	field, ok := inventory.ParseSortField(sort)
	if !ok {
		return "", "", fmt.Errorf("%w: sort %q no soportado", domain.ErrInvalidInput, sort)
	}
	dir, ok := inventory.ParseSortDirection(direction)
	if !ok {
		return "", "", fmt.Errorf("%w: dir %q no soportado", domain.ErrInvalidInput, direction)
	}
	return field, dir, nil
}

func toItemResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:            it.ID,
		ProductID:     it.ProductID,
		StoreID:       it.StoreID,
		StoreName:     it.Store.Name,
		Name:          it.Product.Name,
		SKU:           it.Product.SKU,
		Category:      it.Product.Category,
		CategoryLabel: inventory.CategoryLabel(it.Product.Category),
		SalePriceUSD:  it.Product.SalePriceUSD,
		Qty:           it.Qty,
		MinQty:        it.MinQty,
		Visuals:       inventory.GetStoreStockVisuals(it.Qty, it.MinQty),
	}
}
