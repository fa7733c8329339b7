package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleGetInventories(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.ApiClient.GetInventories(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"inventories": inventories})
}

func (h *HandlerService) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	inventory, err := h.ApiClient.GetInventory(r.Context(), id)
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, inventory)
}

func (h *HandlerService) HandleCreateInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.CreateInventory(r.Context(), req.Name); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleUpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.UpdateInventory(r.Context(), id, req.Name); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.DeleteInventory(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}
