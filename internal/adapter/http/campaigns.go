package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// handleListCampaigns returns campaigns filtered and sorted per the query
// string. Absent filters match everything; sort params are honoured only
// when sort_by names a sortable column.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.ListFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		SortBy:   q.Get("sort_by"),
		SortDesc: q.Get("sort_order") == "desc",
	}
	campaigns, err := h.campaigns.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.respondJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns a single campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	campaign, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.campaignError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, campaign)
}

// handleCreateCampaign creates a campaign from the request body and
// returns it with HTTP 201. Validation failures produce HTTP 422 with a
// per-field detail object.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	campaign, err := h.campaigns.Create(r.Context(), in)
	if err != nil {
		h.campaignError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, campaign)
}

// handleUpdateCampaign overwrites the full field set of an existing
// campaign. Partial updates are not supported.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var in domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	campaign, err := h.campaigns.Update(r.Context(), id, in)
	if err != nil {
		h.campaignError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, campaign)
}

// handleDeleteCampaign removes a campaign permanently. The deletion is
// terminal; there is no soft delete or undo.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	if err := h.campaigns.Delete(r.Context(), id); err != nil {
		h.campaignError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted"})
}

// campaignID parses the {id} path parameter. On failure it writes the
// error response and returns ok=false.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "Invalid campaign id")
		return 0, false
	}
	return id, true
}

// campaignError maps usecase errors onto the detail convention: field
// errors become 422 objects, a missing campaign becomes 404, anything else
// is logged and hidden behind a 500.
func (h *Handler) campaignError(w http.ResponseWriter, err error) {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		h.respondError(w, http.StatusUnprocessableEntity, fieldErrs)
	case errors.Is(err, port.ErrCampaignNotFound):
		h.respondError(w, http.StatusNotFound, "Campaign not found")
	default:
		h.logger.Error("campaign error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
