package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleGetMapFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.ApiClient.GetMapFiles(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"files": files})
}

func (h *HandlerService) HandleImportMapFiles(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Files []string `json:"files"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.ImportMapFiles(r.Context(), req.Files); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleMapImportStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.ApiClient.GetMapImportStatus(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, status)
}
