package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// handleNews proxies the external news feed. An optional keyword switches
// the upstream from top headlines to a keyword search. Upstream failures
// are reported as 502 and upstream throttling as 429, both with
// user-facing detail messages.
func (h *Handler) handleNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.news.Fetch(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		switch {
		case errors.Is(err, port.ErrNewsRateLimited):
			h.respondError(w, http.StatusTooManyRequests, "News API rate limit exceeded. Please try again later.")
		case errors.Is(err, port.ErrNewsUnavailable):
			h.respondError(w, http.StatusBadGateway, "News service temporarily unavailable")
		default:
			h.logger.Error("news error", slog.Any("error", err))
			h.respondError(w, http.StatusBadGateway, "News service temporarily unavailable")
		}
		return
	}
	if articles == nil {
		articles = []domain.NewsArticle{}
	}
	h.respondJSON(w, http.StatusOK, articles)
}
