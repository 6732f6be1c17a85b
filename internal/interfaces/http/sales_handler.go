package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	appsales "github.com/jhoicas/retail-pos/internal/application/sales"
)

// SalesHandler resumen de ventas (protegido).
type SalesHandler struct {
	uc  *appsales.SummaryUseCase
	log zerolog.Logger
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *appsales.SummaryUseCase, log zerolog.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, log: log}
}

// GetSummary godoc
// @Summary      Resumen de ventas del período
// @Description  Total, promedio y cantidad de ventas, financiamiento Krece/Cashea y total en bolívares (tasa BCV).
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        store_id    query  string  false  "Tienda (UUID) o all"
// @Param        start_date  query  string  false  "YYYY-MM-DD (defecto: primer día del mes)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (defecto: hoy)"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales/summary [get]
func (h *SalesHandler) GetSummary(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var req dto.SalesSummaryRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	res, err := h.uc.GetSummary(c.Context(), companyID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(res)
}
