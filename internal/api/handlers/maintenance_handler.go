package handlers

import (
	"net/http"

	"pos-service/internal/repository"
)

// MaintenanceHandler backs the destructive settings-screen actions.
type MaintenanceHandler struct {
	products    repository.ProductRepository
	sales       repository.SaleRepository
	invalidator ReportInvalidator
}

func NewMaintenanceHandler(products repository.ProductRepository, sales repository.SaleRepository, invalidator ReportInvalidator) *MaintenanceHandler {
	return &MaintenanceHandler{products: products, sales: sales, invalidator: invalidator}
}

func (h *MaintenanceHandler) ClearSales(w http.ResponseWriter, r *http.Request) {
	removed, err := h.sales.Clear(r.Context())
	if err != nil {
		writeRepoError(w, err, "failed to clear sales")
		return
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateReports(r.Context())
	}

	writeJSON(w, http.StatusOK, map[string]int64{"removed": removed})
}

func (h *MaintenanceHandler) ClearProducts(w http.ResponseWriter, r *http.Request) {
	removed, err := h.products.Clear(r.Context())
	if err != nil {
		writeRepoError(w, err, "failed to clear products")
		return
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateReports(r.Context())
	}

	writeJSON(w, http.StatusOK, map[string]int64{"removed": removed})
}
