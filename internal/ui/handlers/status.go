package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/ui/responses"
	"github.com/homearc/homearc/internal/version"
)

// HandleSnapshot returns the latest polled backend state (status, events,
// refresh progress) for the dashboard.
func (h *HandlerService) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, h.Store.Current())
}

// HandleVersion returns the front-end build information.
func (h *HandlerService) HandleVersion(w http.ResponseWriter, r *http.Request) {
	responses.RespondWithJSON(w, http.StatusOK, version.Get())
}

// HandleGetSettings returns the appliance settings.
func (h *HandlerService) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.ApiClient.GetSettings(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, settings)
}

// HandleUpdateSettings patches the appliance settings.
func (h *HandlerService) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var update api.SettingsUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	if err := h.ApiClient.UpdateSettings(r.Context(), update); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

// HandleStatistics returns the files/global statistics rollup.
func (h *HandlerService) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ApiClient.GetStatistics(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, stats)
}
