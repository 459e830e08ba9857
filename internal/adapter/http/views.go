package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"clipmarket/internal/core/port"
)

// handleTrack polls the view supplier for every tracked clip and returns the
// run's counters.
func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	res, err := h.views.TrackViews(r.Context())
	if errors.Is(err, port.ErrRunInProgress) {
		http.Error(w, "view tracking already running", http.StatusConflict)
		return
	}
	if err != nil {
		h.logger.Error("track views error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
