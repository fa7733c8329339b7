package handlers

import (
	"net/http"
	"time"

	"github.com/homearc/homearc/internal/ui/responses"
)

// HandleNotifications returns toasts created after the supplied watermark.
// The browser polls this with the timestamp of the newest toast it has seen.
func (h *HandlerService) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	var after time.Time
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			responses.RespondWithError(w, r, http.StatusBadRequest, "Invalid 'after' timestamp.")
			return
		}
		after = parsed
	}

	responses.RespondWithJSON(w, http.StatusOK, map[string]any{
		"notifications": h.Hub.Recent(after),
		"now":           time.Now().UTC(),
	})
}
