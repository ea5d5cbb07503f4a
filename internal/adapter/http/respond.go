package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// detailPayload is the error body convention shared with the frontend:
// a single "detail" field holding either a message string or a field
// error object.
type detailPayload struct {
	Detail any `json:"detail"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, detail any) {
	h.respondJSON(w, status, detailPayload{Detail: detail})
}
