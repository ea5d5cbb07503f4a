package httpadapter

import (
	"log/slog"
	"net/http"

	"campaign-tracker/internal/core/domain"
)

// The dashboard endpoints are pure pass-throughs of server-computed
// projections; the handlers only shape errors and empty results.

func (h *Handler) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.dashboardError(w, "summary", err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleStatusDistribution(w http.ResponseWriter, r *http.Request) {
	counts, err := h.dashboard.StatusDistribution(r.Context())
	if err != nil {
		h.dashboardError(w, "status distribution", err)
		return
	}
	if counts == nil {
		counts = []domain.StatusCount{}
	}
	h.respondJSON(w, http.StatusOK, counts)
}

func (h *Handler) handleBudgetByCategory(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.dashboard.BudgetByCategory(r.Context())
	if err != nil {
		h.dashboardError(w, "budget by category", err)
		return
	}
	if budgets == nil {
		budgets = []domain.CategoryBudget{}
	}
	h.respondJSON(w, http.StatusOK, budgets)
}

func (h *Handler) handleCampaignsOverTime(w http.ResponseWriter, r *http.Request) {
	points, err := h.dashboard.CampaignsOverTime(r.Context())
	if err != nil {
		h.dashboardError(w, "campaigns over time", err)
		return
	}
	if points == nil {
		points = []domain.TimeSeriesPoint{}
	}
	h.respondJSON(w, http.StatusOK, points)
}

func (h *Handler) dashboardError(w http.ResponseWriter, name string, err error) {
	h.logger.Error("dashboard error", slog.String("projection", name), slog.Any("error", err))
	h.respondError(w, http.StatusInternalServerError, "Internal server error")
}
