package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-pricing/internal/core/port"
	"campaign-pricing/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the pricing and billing use cases, optional metrics and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	pricing port.PricingUseCase
	billing port.BillingUseCase
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. When m is non-nil
// and metricsPath is not empty the Prometheus exposition is mounted there.
func NewHandler(pricing port.PricingUseCase, billing port.BillingUseCase, m *metrics.Metrics, metricsPath string, logger *slog.Logger) *Handler {
	h := &Handler{pricing: pricing, billing: billing, metrics: m, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/pricing/quote", h.handleQuote)
		r.Get("/pricing/reach", h.handleReach)

		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/quote", h.handleCampaignQuote)
			r.Post("/invoices", h.handleCreateInvoices)
			r.Get("/invoices", h.handleListInvoices)
		})
	})
	if m != nil && metricsPath != "" {
		r.Method(http.MethodGet, metricsPath, m.Handler())
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
