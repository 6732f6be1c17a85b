package reports

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos/internal/application/dto"
)

// ReportCache caché del reporte ejecutivo. Un fallo de la caché nunca impide generar el reporte.
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.ExecutiveReportDTO, bool, error)
	Set(ctx context.Context, key string, report *dto.ExecutiveReportDTO, ttl time.Duration) error
}
