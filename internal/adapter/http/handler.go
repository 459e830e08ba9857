package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clipmarket/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// The POST routes trigger engine runs; the GET routes read the payout ledger.
type Handler struct {
	payouts      port.PayoutUseCase
	views        port.ViewTrackingUseCase
	logger       *slog.Logger
	triggerToken string
	metrics      http.Handler
	router       chi.Router
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithTriggerToken requires the bearer token on the trigger routes.
func WithTriggerToken(token string) HandlerOption {
	return func(h *Handler) { h.triggerToken = token }
}

// WithMetricsHandler exposes h under /metrics.
func WithMetricsHandler(m http.Handler) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(payouts port.PayoutUseCase, views port.ViewTrackingUseCase, logger *slog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{payouts: payouts, views: views, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.requireTriggerToken)
			r.Post("/payouts/calculate", h.handleCalculate)
			r.Post("/payouts/process", h.handleProcess)
			r.Post("/views/track", h.handleTrack)
		})
		r.Get("/campaigns/{id}/payouts", h.handleCampaignPayouts)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
