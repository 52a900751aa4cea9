package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"pos-service/internal/models"
)

type saleRepo struct {
	db *pgx.Conn
}

func NewSaleRepository(db *pgx.Conn) SaleRepository {
	return &saleRepo{db: db}
}

func validateSale(s *models.Sale) error {
	if s == nil {
		return fmt.Errorf("%w: sale cannot be nil", ErrInvalidInput)
	}
	if s.ProductName == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if s.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price cannot be negative", ErrInvalidInput)
	}
	return nil
}

// Create validates, computes the line total once, and persists the sale as
// a single statement. The total is never recomputed on read.
func (r *saleRepo) Create(ctx context.Context, s *models.Sale) error {
	if err := validateSale(s); err != nil {
		return err
	}

	s.Total = s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))

	now := time.Now()
	if s.SaleTime.IsZero() {
		s.SaleTime = now
	}
	s.CreatedAt = now

	sql := `
		INSERT INTO sales (
			product_name,
			quantity,
			unit_price,
			total,
			sale_time,
			created_at
	) VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING sale_id
	`

	err := r.db.QueryRow(ctx, sql,
		s.ProductName,
		s.Quantity,
		s.UnitPrice,
		s.Total,
		s.SaleTime,
		s.CreatedAt,
	).Scan(&s.SaleID)
	if err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	return nil
}

func (r *saleRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}

	sql := `DELETE FROM sales WHERE sale_id = $1`

	result, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

const saleColumns = `
		sale_id,
		product_name,
		quantity,
		unit_price,
		total,
		sale_time,
		created_at
`

func (r *saleRepo) ListOnDay(ctx context.Context, day time.Time) ([]models.Sale, error) {
	lo, hi := dayBounds(day)
	return r.listBetween(ctx, lo, hi)
}

func (r *saleRepo) ListInRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	lo, hi := rangeBounds(start, end)
	return r.listBetween(ctx, lo, hi)
}

func (r *saleRepo) listBetween(ctx context.Context, lo, hi time.Time) ([]models.Sale, error) {
	sql := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_time >= $1 AND sale_time < $2
		ORDER BY sale_time DESC
	`

	rows, err := r.db.Query(ctx, sql, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func (r *saleRepo) ListAll(ctx context.Context) ([]models.Sale, error) {
	sql := `
		SELECT ` + saleColumns + `
		FROM sales
		ORDER BY sale_time DESC
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]models.Sale, error) {
	var sales []models.Sale

	for rows.Next() {
		var s models.Sale
		err := rows.Scan(
			&s.SaleID,
			&s.ProductName,
			&s.Quantity,
			&s.UnitPrice,
			&s.Total,
			&s.SaleTime,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return sales, nil
}

func (r *saleRepo) Clear(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM sales`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear sales: %w", err)
	}
	return result.RowsAffected(), nil
}
