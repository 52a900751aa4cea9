package handlers

import (
	"errors"
	"net/http"

	"pos-service/internal/export"
	"pos-service/internal/models"
	"pos-service/internal/repository"
)

type ExportHandler struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

func NewExportHandler(products repository.ProductRepository, sales repository.SaleRepository) *ExportHandler {
	return &ExportHandler{products: products, sales: sales}
}

// Backup streams the full structured export document.
func (h *ExportHandler) Backup(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), false)
	if err != nil {
		writeRepoError(w, err, "failed to load products for backup")
		return
	}

	sales, err := h.sales.ListAll(r.Context())
	if err != nil {
		writeRepoError(w, err, "failed to load sales for backup")
		return
	}

	data, err := export.MarshalBackup(export.BuildBackup(products, sales))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to build backup", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="pos-backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// SalesCSV writes the tabular export, over a date range when start/end are
// given, otherwise over the whole ledger.
func (h *ExportHandler) SalesCSV(w http.ResponseWriter, r *http.Request) {
	var err error
	sales := []models.Sale{}

	if r.URL.Query().Get("start") != "" || r.URL.Query().Get("end") != "" {
		start, end, ok := rangeParams(w, r)
		if !ok {
			return
		}
		sales, err = h.sales.ListInRange(r.Context(), start, end)
	} else {
		sales, err = h.sales.ListAll(r.Context())
	}
	if err != nil {
		writeRepoError(w, err, "failed to load sales for export")
		return
	}

	csv, err := export.SalesCSV(sales)
	if err != nil {
		if errors.Is(err, export.ErrNoSales) {
			writeError(w, http.StatusUnprocessableEntity, "no_sales", "no sales to export", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to build csv", nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
