package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"pos-service/internal/models"
	"pos-service/internal/repository"
)

type ProductHandler struct {
	repo     repository.ProductRepository
	validate *validator.Validate
}

func NewProductHandler(repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		repo:     repo,
		validate: validator.New(),
	}
}

type ProductCreateRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "name is required", nil)
		return
	}
	if req.Price.IsNegative() {
		writeError(w, http.StatusBadRequest, "invalid_input", "price cannot be negative", nil)
		return
	}

	product := models.Product{
		Name:  req.Name,
		Price: req.Price,
	}

	if err := h.repo.Create(r.Context(), &product); err != nil {
		writeRepoError(w, err, "failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") != "false"

	products, err := h.repo.List(r.Context(), activeOnly)
	if err != nil {
		writeRepoError(w, err, "failed to list products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "query parameter q is required", nil)
		return
	}

	products, err := h.repo.SearchByName(r.Context(), q)
	if err != nil {
		writeRepoError(w, err, "failed to search products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.ProductPatch
	if ok := decodeJSON(w, r, &patch); !ok {
		return
	}

	if err := h.repo.Update(r.Context(), id, patch); err != nil {
		writeRepoError(w, err, "failed to update product")
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *ProductHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *ProductHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var err error
	if active {
		err = h.repo.Activate(r.Context(), id)
	} else {
		err = h.repo.Deactivate(r.Context(), id)
	}
	if err != nil {
		writeRepoError(w, err, "failed to change product state")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"product_id": id, "active": active})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err, "failed to delete product")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid id", nil)
		return 0, false
	}
	return id, true
}
