package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-pos/internal/application/reports"
)

// ReportHandler maneja el reporte ejecutivo.
type ReportHandler struct {
	uc  *reports.ExecutiveReportUseCase
	log zerolog.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ExecutiveReportUseCase, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// GetExecutive godoc
// @Summary      Reporte ejecutivo
// @Description  Inventario, categorías, ventas del día y del mes, financiamiento y montos en bolívares.
// @Description  El resultado se guarda en caché por ventanas de tiempo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  false  "Tienda (UUID) o all"
// @Success      200  {object}  dto.ExecutiveReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/executive [get]
func (h *ReportHandler) GetExecutive(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	report, err := h.uc.Get(c.Context(), companyID, c.Query("store_id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(report)
}
