package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-service/internal/models"
)

func reportRouter(h *ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/reports/today", h.Today)
	r.Get("/reports/summary", h.PeriodSummary)
	r.Get("/reports/top-products", h.TopProducts)
	r.Get("/reports/daily-revenue", h.DailyRevenue)
	r.Get("/reports/stats", h.Stats)
	return r
}

func TestReportToday(t *testing.T) {
	repo := &stubReportRepo{
		todaySummary: func(ctx context.Context) (*models.SalesSummary, error) {
			return &models.SalesSummary{
				Count:        2,
				TotalRevenue: decimal.RequireFromString("13.00"),
				TotalUnits:   3,
			}, nil
		},
	}
	router := reportRouter(NewReportHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/reports/today", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.SalesSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.Count)
	assert.Equal(t, int64(3), got.TotalUnits)
	assert.True(t, got.TotalRevenue.Equal(decimal.RequireFromString("13.00")))
}

func TestReportSummaryRequiresRange(t *testing.T) {
	router := reportRouter(NewReportHandler(&stubReportRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/reports/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportTopProductsWholeLedgerByDefault(t *testing.T) {
	var gotStart, gotEnd *time.Time
	var gotLimit int
	repo := &stubReportRepo{
		topProducts: func(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error) {
			gotStart, gotEnd, gotLimit = start, end, limit
			return []models.ProductRanking{
				{ProductName: "B", TotalQuantity: 5, TotalRevenue: decimal.RequireFromString("25.00")},
				{ProductName: "A", TotalQuantity: 5, TotalRevenue: decimal.RequireFromString("20.00")},
			}, nil
		},
	}
	router := reportRouter(NewReportHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/reports/top-products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotStart)
	assert.Nil(t, gotEnd)
	assert.Zero(t, gotLimit, "absent limit is left to the repository default")
}

func TestReportTopProductsWithRangeAndLimit(t *testing.T) {
	var gotStart, gotEnd *time.Time
	var gotLimit int
	repo := &stubReportRepo{
		topProducts: func(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error) {
			gotStart, gotEnd, gotLimit = start, end, limit
			return nil, nil
		},
	}
	router := reportRouter(NewReportHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/reports/top-products?start=2025-03-01&end=2025-03-31&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotStart)
	require.NotNil(t, gotEnd)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), *gotStart)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local), *gotEnd)
	assert.Equal(t, 5, gotLimit)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestReportTopProductsRejectsBadLimit(t *testing.T) {
	router := reportRouter(NewReportHandler(&stubReportRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/reports/top-products?limit=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportDailyRevenue(t *testing.T) {
	var gotDays int
	repo := &stubReportRepo{
		dailyRevenueSeries: func(ctx context.Context, days int) ([]models.DailyRevenue, error) {
			gotDays = days
			return []models.DailyRevenue{
				{Day: "2025-03-01", Total: decimal.RequireFromString("12.50")},
			}, nil
		},
	}
	router := reportRouter(NewReportHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/reports/daily-revenue?days=14", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 14, gotDays)

	var got []models.DailyRevenue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-01", got[0].Day)
}

func TestReportStats(t *testing.T) {
	repo := &stubReportRepo{
		storeStats: func(ctx context.Context) (*models.StoreStats, error) {
			return &models.StoreStats{
				ProductCount:    4,
				SaleCount:       20,
				LifetimeRevenue: decimal.RequireFromString("350.75"),
			}, nil
		},
	}
	router := reportRouter(NewReportHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/reports/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.StoreStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(4), got.ProductCount)
	assert.Equal(t, int64(20), got.SaleCount)
}
