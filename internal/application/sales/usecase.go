// Package sales casos de uso de resumen de ventas por período.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/jhoicas/retail-pos/internal/domain/sales"
)

const (
	dateLayout   = "2006-01-02"
	baseCurrency = "USD"
)

// SummaryUseCase resumen de ventas, financiamiento y conversión a bolívares de un período.
type SummaryUseCase struct {
	saleRepo  repository.SaleRepository
	rateRepo  repository.ExchangeRateRepository
	storeRepo repository.StoreRepository
	now       func() time.Time
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(saleRepo repository.SaleRepository, rateRepo repository.ExchangeRateRepository, storeRepo repository.StoreRepository) *SummaryUseCase {
	return &SummaryUseCase{saleRepo: saleRepo, rateRepo: rateRepo, storeRepo: storeRepo, now: time.Now}
}

// WithClock reemplaza el reloj usado para los períodos por defecto (tests).
func (uc *SummaryUseCase) WithClock(now func() time.Time) *SummaryUseCase {
	uc.now = now
	return uc
}

// GetSummary resumen del período [start_date, end_date]. Sin fechas: del primer día del mes a hoy.
// Una tienda que no pertenece a la empresa devuelve domain.ErrNotFound.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, companyID string, req dto.SalesSummaryRequest) (*dto.SalesSummaryResponse, error) {
	start, end, err := ParsePeriod(req.StartDate, req.EndDate, uc.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := EnsureStore(ctx, uc.storeRepo, companyID, req.StoreID); err != nil {
		return nil, err
	}

	list, err := uc.saleRepo.ListByPeriod(ctx, companyID, req.StoreID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	rate, err := LatestRate(ctx, uc.rateRepo)
	if err != nil {
		return nil, err
	}

	summary := sales.GetSalesSummary(list, req.StoreID)
	return &dto.SalesSummaryResponse{
		Period:       dto.PeriodDTO{StartDate: start.Format(dateLayout), EndDate: end.Format(dateLayout)},
		Summary:      summary,
		Financing:    sales.GetFinancingSummary(list, req.StoreID),
		BCVRate:      rate,
		TotalSalesBs: sales.ToBolivars(summary.TotalSales, rate),
	}, nil
}

// EnsureStore verifica que la tienda pertenezca a la empresa. "" y "all" no se verifican.
func EnsureStore(ctx context.Context, repo repository.StoreRepository, companyID, storeID string) error {
	if storeID == "" || storeID == entity.AllStores {
		return nil
	}
	s, err := repo.GetByID(ctx, companyID, storeID)
	if err != nil {
		return fmt.Errorf("buscar tienda: %w", err)
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return nil
}

// LatestRate tasa BCV vigente; cero si no hay ninguna registrada.
func LatestRate(ctx context.Context, repo repository.ExchangeRateRepository) (decimal.Decimal, error) {
	r, err := repo.Latest(ctx, baseCurrency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tasa de cambio: %w", err)
	}
	if r == nil {
		return decimal.Zero, nil
	}
	return r.Rate, nil
}

// ParsePeriod convierte las fechas YYYY-MM-DD en un rango; end es inclusivo hasta el final del día.
// start vacío = primer día del mes de end; end vacío = now.
func ParsePeriod(startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	if endStr == "" {
		end = now
	} else {
		end, err = time.ParseInLocation(dateLayout, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date inválido: %w", err)
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	if startStr == "" {
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	} else {
		start, err = time.ParseInLocation(dateLayout, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date inválido: %w", err)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date no puede ser posterior a end_date")
	}
	return start, end, nil
}
