package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-service/internal/models"
)

// ErrNoSales signals that a tabular export was asked for an empty slice.
// The caller decides how to surface it; a silent header-only file is never
// produced.
var ErrNoSales = errors.New("no sales to export")

const FormatVersion = "1.0"

// Backup is the structured export document. The shape is stable so a later
// import path can round-trip it.
type Backup struct {
	FormatVersion string           `json:"format_version"`
	ExportedAt    time.Time        `json:"exported_at"`
	ProductCount  int              `json:"product_count"`
	SaleCount     int              `json:"sale_count"`
	Products      []models.Product `json:"products"`
	Sales         []models.Sale    `json:"sales"`
}

func BuildBackup(products []models.Product, sales []models.Sale) Backup {
	return Backup{
		FormatVersion: FormatVersion,
		ExportedAt:    time.Now(),
		ProductCount:  len(products),
		SaleCount:     len(sales),
		Products:      products,
		Sales:         sales,
	}
}

func MarshalBackup(b Backup) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup: %w", err)
	}
	return data, nil
}

func UnmarshalBackup(data []byte) (Backup, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, fmt.Errorf("failed to unmarshal backup: %w", err)
	}
	return b, nil
}

// CSVHeader is the fixed first row of the tabular export. Column order and
// the Portuguese labels match the files the mobile app produced, so sheets
// built on the old exports keep working.
const CSVHeader = "ID;Produto;Quantidade;Preco Unitario;Valor Total;Data Venda"

// SalesCSV renders one semicolon-delimited row per sale. Money carries
// exactly two decimals with a decimal comma; text fields are always quoted.
func SalesCSV(sales []models.Sale) (string, error) {
	if len(sales) == 0 {
		return "", ErrNoSales
	}

	var sb strings.Builder
	sb.WriteString(CSVHeader)
	sb.WriteByte('\n')

	for _, s := range sales {
		sb.WriteString(fmt.Sprintf("%d;%s;%d;%s;%s;%s\n",
			s.SaleID,
			quoteField(s.ProductName),
			s.Quantity,
			money(s.UnitPrice),
			money(s.Total),
			quoteField(s.SaleTime.Format("2006-01-02 15:04:05")),
		))
	}

	return sb.String(), nil
}

// money renders a decimal with two places and a comma separator.
func money(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// quoteField double-quotes a text field, escaping embedded quotes by
// doubling them.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
