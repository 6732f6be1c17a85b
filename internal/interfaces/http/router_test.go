package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos/internal/application/dto"
	"github.com/jhoicas/retail-pos/internal/application/inventory"
	"github.com/jhoicas/retail-pos/internal/application/reports"
	appsales "github.com/jhoicas/retail-pos/internal/application/sales"
	"github.com/jhoicas/retail-pos/internal/domain/entity"
	"github.com/jhoicas/retail-pos/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/retail-pos/internal/interfaces/http"
)

// ─── Fakes de repositorio ─────────────────────────────────────────────────────

type stubInventoryRepo struct {
	items []entity.InventoryItem
	err   error
}

func (s *stubInventoryRepo) ListByCompany(_ context.Context, companyID, _ string) ([]entity.InventoryItem, error) {
	if companyID != testCompanyID {
		return []entity.InventoryItem{}, nil
	}
	return s.items, s.err
}

type stubStoreRepo struct{ stores []entity.Store }

func (s *stubStoreRepo) ListByCompany(_ context.Context, _ string) ([]entity.Store, error) {
	return s.stores, nil
}

func (s *stubStoreRepo) GetByID(_ context.Context, _ string, id string) (*entity.Store, error) {
	for i := range s.stores {
		if s.stores[i].ID == id {
			return &s.stores[i], nil
		}
	}
	return nil, nil
}

type stubSaleRepo struct{ sales []entity.SaleRecord }

func (s *stubSaleRepo) ListByPeriod(_ context.Context, _ string, _ string, _, _ time.Time) ([]entity.SaleRecord, error) {
	return s.sales, nil
}

type stubRateRepo struct{}

func (stubRateRepo) Latest(_ context.Context, _ string) (*entity.ExchangeRate, error) {
	return nil, nil
}

func buildAPI(t *testing.T, invRepo *stubInventoryRepo) *fiber.App {
	t.Helper()
	phone := entity.InventoryProduct{Name: "Galaxy A15", SKU: "SKU-001", Category: "phones", SalePriceUSD: decimal.NewFromInt(100)}
	if invRepo == nil {
		invRepo = &stubInventoryRepo{items: []entity.InventoryItem{
			{ID: "inv-1", ProductID: "p-1", StoreID: "store-1", Qty: 5, MinQty: 3, Product: phone, Store: entity.InventoryStoreRef{Name: "Tienda Norte"}},
			{ID: "inv-2", ProductID: "p-1", StoreID: "store-2", Qty: 0, MinQty: 2, Product: phone, Store: entity.InventoryStoreRef{Name: "Tienda Centro"}},
		}}
	}
	storeRepo := &stubStoreRepo{stores: []entity.Store{{ID: "store-1", Name: "Tienda Norte"}, {ID: "store-2", Name: "Tienda Centro"}}}
	saleRepo := &stubSaleRepo{sales: []entity.SaleRecord{{ID: "s-1", StoreID: "store-1", TotalUSD: decimal.NewFromInt(80), CreatedAt: time.Now()}}}

	mem := cache.NewMemoryReportCache()
	reportUC := reports.NewExecutiveReportUseCase(reports.Repositories{
		Inventory: invRepo, Stores: storeRepo, Sales: saleRepo, ExchangeRate: stubRateRepo{},
	}, mem, reports.CacheSettings{TTL: time.Minute, Bucket: time.Minute}, zerolog.Nop())

	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: inventory.NewUseCase(invRepo, storeRepo),
		SalesUC:     appsales.NewSummaryUseCase(saleRepo, stubRateRepo{}, storeRepo),
		ReportUC:    reportUC,
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
		Logger:      zerolog.Nop(),
	})
	return app
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// ─── Rutas ────────────────────────────────────────────────────────────────────

func TestRouter_RequiereToken(t *testing.T) {
	app := buildAPI(t, nil)
	for _, path := range []string{"/api/stores", "/api/inventory", "/api/inventory/stats", "/api/sales/summary", "/api/reports/executive"} {
		resp := doGet(t, app, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_Stores(t *testing.T) {
	resp := doGet(t, buildAPI(t, nil), "/api/stores", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stores []dto.StoreResponse
	decodeJSON(t, resp, &stores)
	assert.Len(t, stores, 2)
}

func TestRouter_InventoryList(t *testing.T) {
	resp := doGet(t, buildAPI(t, nil), "/api/inventory?sort=qty&dir=asc", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body struct {
		Items []struct {
			ID      string `json:"id"`
			Qty     int    `json:"qty"`
			Visuals struct {
				QuantityClass string `json:"quantity_class"`
				StatusText    string `json:"status_text"`
			} `json:"visuals"`
		} `json:"items"`
		Total int `json:"total"`
	}
	decodeJSON(t, resp, &body)
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "inv-2", body.Items[0].ID)
	assert.Equal(t, "Sin stock", body.Items[0].Visuals.StatusText)
}

func TestRouter_InventoryList_SortInvalido(t *testing.T) {
	resp := doGet(t, buildAPI(t, nil), "/api/inventory?sort=color", bearer(t, "admin"))
	var body dto.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeJSON(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestRouter_InventoryList_TiendaInexistente(t *testing.T) {
	resp := doGet(t, buildAPI(t, nil), "/api/inventory?store_id=store-9", bearer(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_InventoryGroupedAndStats(t *testing.T) {
	app := buildAPI(t, nil)

	resp := doGet(t, app, "/api/inventory/grouped", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var groups []map[string]interface{}
	decodeJSON(t, resp, &groups)
	assert.Len(t, groups, 1)

	resp = doGet(t, app, "/api/inventory/stats?store_id=all&selected_store=all", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		Stats struct {
			TotalProducts int `json:"total_products"`
			OutOfStock    int `json:"out_of_stock"`
			TotalStores   int `json:"total_stores"`
		} `json:"stats"`
	}
	decodeJSON(t, resp, &stats)
	assert.Equal(t, 1, stats.Stats.TotalProducts)
	assert.Equal(t, 0, stats.Stats.OutOfStock)
	assert.Equal(t, 2, stats.Stats.TotalStores)
}

func TestRouter_SalesSummary(t *testing.T) {
	app := buildAPI(t, nil)

	resp := doGet(t, app, "/api/sales/summary", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Summary struct {
			Count int `json:"count"`
		} `json:"summary"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, 1, body.Summary.Count)

	resp = doGet(t, app, "/api/sales/summary?start_date=ayer", bearer(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doGet(t, app, "/api/sales/summary?store_id=store-9", bearer(t, "admin"))
	var body404 dto.ErrorResponse
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	decodeJSON(t, resp, &body404)
	assert.Equal(t, "NOT_FOUND", body404.Code)
}

func TestRouter_ExecutiveReport(t *testing.T) {
	resp := doGet(t, buildAPI(t, nil), "/api/reports/executive", bearer(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report dto.ExecutiveReportDTO
	decodeJSON(t, resp, &report)
	assert.Equal(t, "all", report.StoreID)
	assert.Equal(t, 1, report.Inventory.TotalProducts)
}

func TestRouter_ErrorInternoNoExponeDetalle(t *testing.T) {
	app := buildAPI(t, &stubInventoryRepo{err: errors.New("pq: password authentication failed")})

	resp := doGet(t, app, "/api/inventory", bearer(t, "admin"))
	var body dto.ErrorResponse
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	decodeJSON(t, resp, &body)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "password")
}
