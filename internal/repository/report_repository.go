package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"pos-service/internal/models"
)

// reportRepo derives read-only aggregates from the sales table. Currency
// sums run over NUMERIC in Postgres or decimal.Decimal in Go; float64 is
// never in the path.
type reportRepo struct {
	db *pgx.Conn
}

func NewReportRepository(db *pgx.Conn) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) TodaySummary(ctx context.Context) (*models.SalesSummary, error) {
	lo, hi := dayBounds(time.Now())
	return r.summaryBetween(ctx, lo, hi)
}

func (r *reportRepo) PeriodSummary(ctx context.Context, start, end time.Time) (*models.SalesSummary, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	lo, hi := rangeBounds(start, end)
	return r.summaryBetween(ctx, lo, hi)
}

func (r *reportRepo) summaryBetween(ctx context.Context, lo, hi time.Time) (*models.SalesSummary, error) {
	sql := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(SUM(quantity), 0)
		FROM sales
		WHERE sale_time >= $1 AND sale_time < $2
	`

	var summary models.SalesSummary

	err := r.db.QueryRow(ctx, sql, lo, hi).Scan(
		&summary.Count,
		&summary.TotalRevenue,
		&summary.TotalUnits,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build sales summary: %w", err)
	}

	return &summary, nil
}

const defaultTopLimit = 10

// TopProducts groups by the name stored on each sale, not the live catalog,
// so renamed or removed products keep their history. Ties on quantity order
// by name ascending.
func (r *reportRepo) TopProducts(ctx context.Context, start, end *time.Time, limit int) ([]models.ProductRanking, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	sql := `
		SELECT
			product_name,
			SUM(quantity),
			SUM(total)
		FROM sales
	`
	args := []any{}

	if start != nil && end != nil {
		if end.Before(*start) {
			return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
		}
		lo, hi := rangeBounds(*start, *end)
		sql += ` WHERE sale_time >= $1 AND sale_time < $2`
		args = append(args, lo, hi)
	}

	args = append(args, limit)
	sql += fmt.Sprintf(`
		GROUP BY product_name
		ORDER BY SUM(quantity) DESC, product_name ASC
		LIMIT $%d
	`, len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}
	defer rows.Close()

	var rankings []models.ProductRanking

	for rows.Next() {
		var rk models.ProductRanking
		if err := rows.Scan(&rk.ProductName, &rk.TotalQuantity, &rk.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan product ranking: %w", err)
		}
		rankings = append(rankings, rk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return rankings, nil
}

const defaultSeriesDays = 7

// DailyRevenueSeries covers the trailing window of local calendar days up
// to and including today. Days without sales produce no entry.
func (r *reportRepo) DailyRevenueSeries(ctx context.Context, days int) ([]models.DailyRevenue, error) {
	if days <= 0 {
		days = defaultSeriesDays
	}

	now := time.Now()
	lo, _ := dayBounds(now.AddDate(0, 0, -(days - 1)))
	_, hi := dayBounds(now)

	sql := `
		SELECT sale_time, total
		FROM sales
		WHERE sale_time >= $1 AND sale_time < $2
	`

	rows, err := r.db.Query(ctx, sql, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue series: %w", err)
	}
	defer rows.Close()

	var sales []models.Sale

	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.SaleTime, &s.Total); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return aggregateDaily(sales), nil
}

// aggregateDaily buckets sales by local calendar day and sums their totals
// in decimal, oldest day first. Day bucketing stays in Go so it follows
// time.Local exactly like the range bounds do, instead of the database
// session timezone.
func aggregateDaily(sales []models.Sale) []models.DailyRevenue {
	totals := make(map[string]decimal.Decimal)

	for _, s := range sales {
		day := localDay(s.SaleTime)
		totals[day] = totals[day].Add(s.Total)
	}

	series := make([]models.DailyRevenue, 0, len(totals))
	for day, total := range totals {
		series = append(series, models.DailyRevenue{Day: day, Total: total})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Day < series[j].Day
	})

	return series
}

func (r *reportRepo) StoreStats(ctx context.Context) (*models.StoreStats, error) {
	sql := `
		SELECT
			(SELECT COUNT(*) FROM products),
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM sales
	`

	var stats models.StoreStats

	err := r.db.QueryRow(ctx, sql).Scan(
		&stats.ProductCount,
		&stats.SaleCount,
		&stats.LifetimeRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load store stats: %w", err)
	}

	return &stats, nil
}
