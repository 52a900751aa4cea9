package repository

import (
	"context"
	"time"

	"pos-service/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, id int, patch models.ProductPatch) error
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	List(ctx context.Context, activeOnly bool) ([]models.Product, error)
	SearchByName(ctx context.Context, substring string) ([]models.Product, error)
	Delete(ctx context.Context, id int) error
	Clear(ctx context.Context) (int64, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	Delete(ctx context.Context, id int) error
	ListOnDay(ctx context.Context, day time.Time) ([]models.Sale, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]models.Sale, error)
	ListAll(ctx context.Context) ([]models.Sale, error)
	Clear(ctx context.Context) (int64, error)
}

type ReportRepository interface {
	TodaySummary(ctx context.Context) (*models.SalesSummary, error)
	PeriodSummary(ctx context.Context, start, end time.Time) (*models.SalesSummary, error)
	TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error)
	DailyRevenueSeries(ctx context.Context, days int) ([]models.DailyRevenue, error)
	StoreStats(ctx context.Context) (*models.StoreStats, error)
}
