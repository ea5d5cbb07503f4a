package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-tracker/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecases to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	campaigns port.CampaignUseCase
	dashboard port.DashboardUseCase
	news      port.NewsProvider
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The
// frontendOrigin is the single origin allowed by the CORS middleware; the
// browser frontend runs on a different host.
func NewHandler(
	campaigns port.CampaignUseCase,
	dashboard port.DashboardUseCase,
	news port.NewsProvider,
	logger *slog.Logger,
	frontendOrigin string,
) *Handler {
	h := &Handler{campaigns: campaigns, dashboard: dashboard, news: news, logger: logger}
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(measureRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", h.handleDashboardSummary)
			r.Get("/status-distribution", h.handleStatusDistribution)
			r.Get("/budget-by-category", h.handleBudgetByCategory)
			r.Get("/campaigns-over-time", h.handleCampaignsOverTime)
		})
		r.Get("/news", h.handleNews)
	})
	r.Handle("/metrics", promhttp.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
