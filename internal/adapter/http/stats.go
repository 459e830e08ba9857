package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"clipmarket/internal/core/port"
)

// handleStatsOverview returns payout totals over a specified period. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `campaign_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
// Invalid parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		now     = time.Now()
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = now.Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = now
	}
	if req.To.Before(req.From) {
		http.Error(w, "'to' precedes 'from'", http.StatusBadRequest)
		return
	}

	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign_id", http.StatusBadRequest)
			return
		}
		req.CampaignID = &id
	}

	stats, err := h.payouts.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
