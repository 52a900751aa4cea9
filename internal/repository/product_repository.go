package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pos-service/internal/models"
)

type productRepo struct {
	db *pgx.Conn
}

func NewProductRepository(db *pgx.Conn) ProductRepository {
	return &productRepo{db: db}
}

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: product price cannot be negative", ErrInvalidInput)
	}

	sql := `
		INSERT INTO products (
			name,
			price,
			active,
			created_at
	) VALUES ($1, $2, $3, $4)
	RETURNING product_id
	`

	p.Active = true
	p.CreatedAt = time.Now()

	err := r.db.QueryRow(ctx, sql,
		p.Name,
		p.Price,
		p.Active,
		p.CreatedAt,
	).Scan(&p.ProductID)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: product name %q already exists", ErrDuplicate, p.Name)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}

	sql := `
		SELECT
			product_id,
			name,
			price,
			active,
			created_at
		FROM products WHERE product_id = $1
		`

	var product models.Product

	err := r.db.QueryRow(ctx, sql, id).Scan(
		&product.ProductID,
		&product.Name,
		&product.Price,
		&product.Active,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}

	return &product, nil
}

// buildPatch renders the SET clause for a partial update. Placeholders start
// at $1; the id placeholder follows the last patched field.
func buildPatch(patch models.ProductPatch) (string, []any) {
	var fields []string
	var args []any

	if patch.Name != nil {
		args = append(args, *patch.Name)
		fields = append(fields, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Price != nil {
		args = append(args, *patch.Price)
		fields = append(fields, fmt.Sprintf("price = $%d", len(args)))
	}
	if patch.Active != nil {
		args = append(args, *patch.Active)
		fields = append(fields, fmt.Sprintf("active = $%d", len(args)))
	}

	return strings.Join(fields, ", "), args
}

func (r *productRepo) Update(ctx context.Context, id int, patch models.ProductPatch) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}
	if patch.Empty() {
		return nil
	}
	if patch.Name != nil && *patch.Name == "" {
		return fmt.Errorf("%w: product name required", ErrInvalidInput)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return fmt.Errorf("%w: product price cannot be negative", ErrInvalidInput)
	}

	setClause, args := buildPatch(patch)
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE products SET %s WHERE product_id = $%d", setClause, len(args))

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicate(err) && patch.Name != nil {
			return fmt.Errorf("%w: product name %q already exists", ErrDuplicate, *patch.Name)
		}
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepo) Activate(ctx context.Context, id int) error {
	return r.setActive(ctx, id, true)
}

func (r *productRepo) Deactivate(ctx context.Context, id int) error {
	return r.setActive(ctx, id, false)
}

func (r *productRepo) setActive(ctx context.Context, id int, active bool) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}

	sql := `UPDATE products SET active = $1 WHERE product_id = $2`

	result, err := r.db.Exec(ctx, sql, active, id)
	if err != nil {
		return fmt.Errorf("failed to set product %d active=%t: %w", id, active, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepo) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	sql := `
		SELECT
			product_id,
			name,
			price,
			active,
			created_at
		FROM products
	`
	if activeOnly {
		sql += ` WHERE active`
	}
	sql += ` ORDER BY name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepo) SearchByName(ctx context.Context, substring string) ([]models.Product, error) {
	if substring == "" {
		return nil, fmt.Errorf("%w: search text cannot be empty", ErrInvalidInput)
	}

	sql := `
		SELECT
			product_id,
			name,
			price,
			active,
			created_at
		FROM products
		WHERE name ILIKE '%' || $1 || '%' AND active
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, sql, substring)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	var products []models.Product

	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Price,
			&p.Active,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return products, nil
}

func (r *productRepo) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: ID cannot be empty", ErrInvalidInput)
	}

	sql := `DELETE FROM products WHERE product_id = $1`

	result, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepo) Clear(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear products: %w", err)
	}
	return result.RowsAffected(), nil
}
