package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adspend/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the use case, a logger for
// structured logging and the chi router with all routes registered.
type Handler struct {
	svc          port.ExpenditureUseCase
	logger       *slog.Logger
	router       chi.Router
	maxBodyBytes int64
}

// NewHandler creates a handler with all routes configured. Metrics from
// gatherer are exposed on /metrics. maxBodyBytes caps request bodies on the
// compute endpoints; zero disables the cap.
func NewHandler(svc port.ExpenditureUseCase, logger *slog.Logger, gatherer prometheus.Gatherer, maxBodyBytes int64) *Handler {
	h := &Handler{svc: svc, logger: logger, maxBodyBytes: maxBodyBytes}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/expenditure", h.handleCompute)
		r.Get("/ratecard", h.handleRateCard)
		r.Post("/reports", h.handleCreateReport)
		r.Get("/reports/{id}", h.handleGetReport)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
