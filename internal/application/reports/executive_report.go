// Package reports genera el reporte ejecutivo (inventario + ventas del día y del mes)
// y lo guarda en caché por ventanas de tiempo.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	appsales "github.com/jhoicas/retail-pos/internal/application/sales"
	"github.com/jhoicas/retail-pos/internal/domain"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/domain/inventory"
	"github.com/jhoicas/retail-pos/internal/domain/repository"
	"github.com/jhoicas/retail-pos/internal/domain/sales"
)

// Repositories puertos de lectura que usa el reporte.
type Repositories struct {
	Inventory    repository.InventoryRepository
	Stores       repository.StoreRepository
	Sales        repository.SaleRepository
	ExchangeRate repository.ExchangeRateRepository
}

// CacheSettings TTL de cada entrada y tamaño de la ventana que forma parte de la clave.
type CacheSettings struct {
	TTL    time.Duration
	Bucket time.Duration
}

// ExecutiveReportUseCase arma el ExecutiveReportDTO de una empresa y tienda.
type ExecutiveReportUseCase struct {
	repos  Repositories
	cache  ReportCache
	cfg    CacheSettings
	now    func() time.Time
	logger zerolog.Logger
}

// NewExecutiveReportUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewExecutiveReportUseCase(repos Repositories, cache ReportCache, cfg CacheSettings, logger zerolog.Logger) *ExecutiveReportUseCase {
	if cfg.Bucket <= 0 {
		cfg.Bucket = 5 * time.Minute
	}
	return &ExecutiveReportUseCase{
		repos:  repos,
		cache:  cache,
		cfg:    cfg,
		now:    time.Now,
		logger: logger.With().Str("component", "executive_report").Logger(),
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ExecutiveReportUseCase) WithClock(now func() time.Time) *ExecutiveReportUseCase {
	uc.now = now
	return uc
}

// CacheKey clave "empresa:tienda:ventana"; la ventana es unix(now) / tamaño de la ventana en segundos.
func CacheKey(companyID, storeFilter string, now time.Time, bucket time.Duration) string {
	if storeFilter == "" {
		storeFilter = entity.AllStores
	}
	size := int64(bucket / time.Second)
	if size <= 0 {
		size = 1
	}
	return fmt.Sprintf("%s:%s:%d", companyID, storeFilter, now.Unix()/size)
}

// Get devuelve el reporte desde la caché o lo genera. Los fallos de la caché se registran y se ignoran.
func (uc *ExecutiveReportUseCase) Get(ctx context.Context, companyID, storeFilter string) (*dto.ExecutiveReportDTO, error) {
	if storeFilter == "" {
		storeFilter = entity.AllStores
	}
	now := uc.now()
	key := CacheKey(companyID, storeFilter, now, uc.cfg.Bucket)

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.logger.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		} else if ok {
			return cached, nil
		}
	}

	report, err := uc.build(ctx, companyID, storeFilter, now)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, report, uc.cfg.TTL); err != nil {
			uc.logger.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
		}
	}
	return report, nil
}

func (uc *ExecutiveReportUseCase) build(ctx context.Context, companyID, storeFilter string, now time.Time) (*dto.ExecutiveReportDTO, error) {
	if storeFilter != entity.AllStores {
		s, err := uc.repos.Stores.GetByID(ctx, companyID, storeFilter)
		if err != nil {
			return nil, fmt.Errorf("reporte: buscar tienda: %w", err)
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
	}

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// ── Consultas en paralelo ──────────────────────────────────────────────────
	type storesResult struct {
		stores []entity.Store
		err    error
	}
	type inventoryResult struct {
		items []entity.InventoryItem
		err   error
	}
	type salesResult struct {
		sales []entity.SaleRecord
		err   error
	}

	storesCh := make(chan storesResult, 1)
	invCh := make(chan inventoryResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		s, err := uc.repos.Stores.ListByCompany(ctx, companyID)
		storesCh <- storesResult{s, err}
	}()
	go func() {
		items, err := uc.repos.Inventory.ListByCompany(ctx, companyID, entity.AllStores)
		invCh <- inventoryResult{items, err}
	}()
	go func() {
		list, err := uc.repos.Sales.ListByPeriod(ctx, companyID, storeFilter, monthStart, todayEnd)
		salesCh <- salesResult{list, err}
	}()

	rate, rateErr := appsales.LatestRate(ctx, uc.repos.ExchangeRate)
	st := <-storesCh
	inv := <-invCh
	month := <-salesCh

	if st.err != nil {
		return nil, fmt.Errorf("reporte: tiendas: %w", st.err)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("reporte: inventario: %w", inv.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("reporte: ventas del mes: %w", month.err)
	}
	if rateErr != nil {
		return nil, fmt.Errorf("reporte: %w", rateErr)
	}

	// ── Agregación ─────────────────────────────────────────────────────────────
	stats := inventory.CalculateFilteredStats(inv.items, len(st.stores), storeFilter, storeFilter)
	categories := inventory.GetCategoryStats(stats, inv.items, inventory.DefaultCategories(), storeFilter)

	today := make([]entity.SaleRecord, 0)
	for _, s := range month.sales {
		if !s.CreatedAt.Before(todayStart) && !s.CreatedAt.After(todayEnd) {
			today = append(today, s)
		}
	}
	todaySummary := sales.GetSalesSummary(today, storeFilter)
	monthSummary := sales.GetSalesSummary(month.sales, storeFilter)

	return &dto.ExecutiveReportDTO{
		StoreID:          storeFilter,
		GeneratedAt:      now,
		DateLabel:        monthLabel(now),
		Inventory:        stats,
		Categories:       categories,
		TodaySales:       todaySummary,
		MonthlySales:     monthSummary,
		Financing:        sales.GetFinancingSummary(month.sales, storeFilter),
		BCVRate:          rate,
		TodaySalesBs:     sales.ToBolivars(todaySummary.TotalSales, rate),
		MonthlySalesBs:   sales.ToBolivars(monthSummary.TotalSales, rate),
		InventoryValueBs: sales.ToBolivars(stats.TotalValue, rate),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Octubre 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
