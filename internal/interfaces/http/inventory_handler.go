package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/application/inventory"
)

// InventoryHandler maneja las vistas de inventario multi-tienda (protegido).
type InventoryHandler struct {
	uc  *inventory.UseCase
	log zerolog.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// ListStores godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StoreResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *InventoryHandler) ListStores(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	stores, err := h.uc.ListStores(c.Context(), companyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stores)
}

// List godoc
// @Summary      Listar inventario ordenado
// @Description  Filas de inventario con su estado visual de stock. Por defecto ordena por nombre ascendente.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  false  "Tienda (UUID) o all"
// @Param        sort      query  string  false  "name|sku|qty|price|category|store"
// @Param        dir       query  string  false  "asc|desc"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var req dto.InventoryListRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	res, err := h.uc.List(c.Context(), companyID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(res)
}

// Grouped godoc
// @Summary      Inventario agrupado por SKU
// @Description  Un grupo por SKU con la existencia en cada tienda de la empresa (cero donde no hay inventario).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   inventory.GroupedProductBySku
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/grouped [get]
func (h *InventoryHandler) Grouped(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	groups, err := h.uc.Grouped(c.Context(), companyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(groups)
}

// Stats godoc
// @Summary      Estadísticas de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        store_id        query  string  false  "Filtra las filas por tienda; vacío o all = todas"
// @Param        selected_store  query  string  false  "Tienda seleccionada en la vista; all = cuenta todas las tiendas"
// @Success      200  {object}  dto.InventoryStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	res, err := h.uc.Stats(c.Context(), companyID, c.Query("store_id"), c.Query("selected_store"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(res)
}
