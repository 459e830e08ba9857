package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"clipmarket/internal/core/port"
)

// handleCalculate runs payout calculation for all active campaigns and
// returns the per-campaign summaries. A run already in progress yields
// HTTP 409.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	results, err := h.payouts.CalculateAllCampaignPayouts(r.Context())
	if errors.Is(err, port.ErrRunInProgress) {
		http.Error(w, "calculation already running", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Error("calculate payouts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []port.CampaignResult{}
	}
	h.writeJSON(w, http.StatusOK, results)
}

// handleProcess hands due PENDING payouts to the disbursement sink.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	err := h.payouts.ProcessPendingPayouts(r.Context())
	if errors.Is(err, port.ErrRunInProgress) {
		http.Error(w, "disbursement already running", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Error("process payouts error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignPayouts lists a campaign's payout records, newest first.
// `limit` and `offset` are optional.
func (h *Handler) handleCampaignPayouts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var page port.Page
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		if page.Limit, err = strconv.Atoi(v); err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	if v := q.Get("offset"); v != "" {
		if page.Offset, err = strconv.Atoi(v); err != nil {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}

	records, err := h.payouts.ListCampaignPayouts(r.Context(), id, page)
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("list payouts error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}
