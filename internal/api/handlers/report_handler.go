package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pos-service/internal/models"
	"pos-service/internal/repository"
)

type ReportHandler struct {
	repo repository.ReportRepository
}

func NewReportHandler(repo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

func (h *ReportHandler) Today(w http.ResponseWriter, r *http.Request) {
	summary, err := h.repo.TodaySummary(r.Context())
	if err != nil {
		writeRepoError(w, err, "failed to build today summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := rangeParams(w, r)
	if !ok {
		return
	}

	summary, err := h.repo.PeriodSummary(r.Context(), start, end)
	if err != nil {
		writeRepoError(w, err, "failed to build period summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_input", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	// start/end are optional here; absent means the whole ledger
	var start, end *time.Time
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr != "" || endStr != "" {
		s, e, ok := rangeParams(w, r)
		if !ok {
			return
		}
		start, end = &s, &e
	}

	rankings, err := h.repo.TopProducts(r.Context(), start, end, limit)
	if err != nil {
		writeRepoError(w, err, "failed to rank products")
		return
	}
	if rankings == nil {
		rankings = []models.ProductRanking{}
	}

	writeJSON(w, http.StatusOK, rankings)
}

func (h *ReportHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_input", "days must be a positive integer", nil)
			return
		}
		days = parsed
	}

	series, err := h.repo.DailyRevenueSeries(r.Context(), days)
	if err != nil {
		writeRepoError(w, err, "failed to build revenue series")
		return
	}
	if series == nil {
		series = []models.DailyRevenue{}
	}

	writeJSON(w, http.StatusOK, series)
}

func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.StoreStats(r.Context())
	if err != nil {
		writeRepoError(w, err, "failed to load store stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
