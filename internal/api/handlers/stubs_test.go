package handlers

import (
	"context"
	"time"

	"pos-service/internal/models"
)

// Function-field stubs keep each test's behavior next to its assertions.

type stubProductRepo struct {
	create       func(ctx context.Context, p *models.Product) error
	getByID      func(ctx context.Context, id int) (*models.Product, error)
	update       func(ctx context.Context, id int, patch models.ProductPatch) error
	activate     func(ctx context.Context, id int) error
	deactivate   func(ctx context.Context, id int) error
	list         func(ctx context.Context, activeOnly bool) ([]models.Product, error)
	searchByName func(ctx context.Context, substring string) ([]models.Product, error)
	delete       func(ctx context.Context, id int) error
	clear        func(ctx context.Context) (int64, error)
}

func (s *stubProductRepo) Create(ctx context.Context, p *models.Product) error {
	return s.create(ctx, p)
}

func (s *stubProductRepo) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return s.getByID(ctx, id)
}

func (s *stubProductRepo) Update(ctx context.Context, id int, patch models.ProductPatch) error {
	return s.update(ctx, id, patch)
}

func (s *stubProductRepo) Activate(ctx context.Context, id int) error {
	return s.activate(ctx, id)
}

func (s *stubProductRepo) Deactivate(ctx context.Context, id int) error {
	return s.deactivate(ctx, id)
}

func (s *stubProductRepo) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	return s.list(ctx, activeOnly)
}

func (s *stubProductRepo) SearchByName(ctx context.Context, substring string) ([]models.Product, error) {
	return s.searchByName(ctx, substring)
}

func (s *stubProductRepo) Delete(ctx context.Context, id int) error {
	return s.delete(ctx, id)
}

func (s *stubProductRepo) Clear(ctx context.Context) (int64, error) {
	return s.clear(ctx)
}

type stubSaleRepo struct {
	create      func(ctx context.Context, sale *models.Sale) error
	delete      func(ctx context.Context, id int) error
	listOnDay   func(ctx context.Context, day time.Time) ([]models.Sale, error)
	listInRange func(ctx context.Context, start, end time.Time) ([]models.Sale, error)
	listAll     func(ctx context.Context) ([]models.Sale, error)
	clear       func(ctx context.Context) (int64, error)
}

func (s *stubSaleRepo) Create(ctx context.Context, sale *models.Sale) error {
	return s.create(ctx, sale)
}

func (s *stubSaleRepo) Delete(ctx context.Context, id int) error {
	return s.delete(ctx, id)
}

func (s *stubSaleRepo) ListOnDay(ctx context.Context, day time.Time) ([]models.Sale, error) {
	return s.listOnDay(ctx, day)
}

func (s *stubSaleRepo) ListInRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	return s.listInRange(ctx, start, end)
}

func (s *stubSaleRepo) ListAll(ctx context.Context) ([]models.Sale, error) {
	return s.listAll(ctx)
}

func (s *stubSaleRepo) Clear(ctx context.Context) (int64, error) {
	return s.clear(ctx)
}

type stubReportRepo struct {
	todaySummary       func(ctx context.Context) (*models.SalesSummary, error)
	periodSummary      func(ctx context.Context, start, end time.Time) (*models.SalesSummary, error)
	topProducts        func(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error)
	dailyRevenueSeries func(ctx context.Context, days int) ([]models.DailyRevenue, error)
	storeStats         func(ctx context.Context) (*models.StoreStats, error)
}

func (s *stubReportRepo) TodaySummary(ctx context.Context) (*models.SalesSummary, error) {
	return s.todaySummary(ctx)
}

func (s *stubReportRepo) PeriodSummary(ctx context.Context, start, end time.Time) (*models.SalesSummary, error) {
	return s.periodSummary(ctx, start, end)
}

func (s *stubReportRepo) TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error) {
	return s.topProducts(ctx, start, end, limit)
}

func (s *stubReportRepo) DailyRevenueSeries(ctx context.Context, days int) ([]models.DailyRevenue, error) {
	return s.dailyRevenueSeries(ctx, days)
}

func (s *stubReportRepo) StoreStats(ctx context.Context) (*models.StoreStats, error) {
	return s.storeStats(ctx)
}

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) InvalidateReports(ctx context.Context) {
	s.calls++
}
