package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/ui/responses"
)

// Hotspot and throttle toggles. The client layer raises the right toast for
// native-only and hotspot failures; these handlers just acknowledge.

func (h *HandlerService) HandleHotspotOn(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.HotspotOn(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleHotspotOff(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.HotspotOff(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleThrottleOn(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.ThrottleOn(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleThrottleOff(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.ThrottleOff(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}
