package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"pos-service/internal/models"
	"pos-service/internal/repository"
)

// ReportInvalidator drops cached report reads after a ledger mutation.
type ReportInvalidator interface {
	InvalidateReports(ctx context.Context)
}

type SaleHandler struct {
	repo        repository.SaleRepository
	invalidator ReportInvalidator
	validate    *validator.Validate
}

func NewSaleHandler(repo repository.SaleRepository, invalidator ReportInvalidator) *SaleHandler {
	return &SaleHandler{
		repo:        repo,
		invalidator: invalidator,
		validate:    validator.New(),
	}
}

type SaleCreateRequest struct {
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type SaleCreateResponse struct {
	SaleID int             `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SaleCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "product_name is required and quantity must be positive", nil)
		return
	}
	if req.UnitPrice.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_input", "unit_price cannot be negative", nil)
		return
	}

	sale := models.Sale{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	}

	if err := h.repo.Create(r.Context(), &sale); err != nil {
		writeRepoError(w, err, "failed to record sale")
		return
	}

	h.invalidate(r.Context())

	writeJSON(w, http.StatusCreated, SaleCreateResponse{
		SaleID: sale.SaleID,
		Total:  sale.Total,
	})
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, "failed to delete sale")
		return
	}

	h.invalidate(r.Context())

	writeJSON(w, http.StatusNoContent, nil)
}

func (h *SaleHandler) Today(w http.ResponseWriter, r *http.Request) {
	sales, err := h.repo.ListOnDay(r.Context(), time.Now())
	if err != nil {
		writeRepoError(w, err, "failed to list sales")
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}

	writeJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) ListInRange(w http.ResponseWriter, r *http.Request) {
	start, end, ok := rangeParams(w, r)
	if !ok {
		return
	}

	sales, err := h.repo.ListInRange(r.Context(), start, end)
	if err != nil {
		writeRepoError(w, err, "failed to list sales")
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}

	writeJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) invalidate(ctx context.Context) {
	if h.invalidator != nil {
		h.invalidator.InvalidateReports(ctx)
	}
}

// rangeParams reads mandatory start/end YYYY-MM-DD query parameters.
func rangeParams(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "start and end query parameters are required", nil)
		return time.Time{}, time.Time{}, false
	}

	start, err := parseDate(startStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "start must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}

	end, err := parseDate(endStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "end must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}

	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "invalid_input", "end date before start date", nil)
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
