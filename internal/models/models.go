package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductPatch carries a partial update: only non-nil fields are applied.
type ProductPatch struct {
	Name   *string          `json:"name,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Active *bool            `json:"active,omitempty"`
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Active == nil
}

// Sale snapshots the product by value. ProductName and UnitPrice are copied
// at sale time so later catalog edits never rewrite history.
type Sale struct {
	SaleID      int             `json:"sale_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	SaleTime    time.Time       `json:"sale_time"`
	CreatedAt   time.Time       `json:"created_at"`
}

type SalesSummary struct {
	Count        int64           `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalUnits   int64           `json:"total_units"`
}

type ProductRanking struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type DailyRevenue struct {
	Day   string          `json:"day"` // YYYY-MM-DD, local time
	Total decimal.Decimal `json:"total"`
}

type StoreStats struct {
	ProductCount    int64           `json:"product_count"`
	SaleCount       int64           `json:"sale_count"`
	LifetimeRevenue decimal.Decimal `json:"lifetime_revenue"`
}
