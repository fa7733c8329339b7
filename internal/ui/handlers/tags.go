package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleGetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.ApiClient.GetTags(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"tags": tags})
}

func (h *HandlerService) HandleSaveTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.SaveTag(r.Context(), req.ID, req.Name, req.Color); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleDeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.DeleteTag(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}
