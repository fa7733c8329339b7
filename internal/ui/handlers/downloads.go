package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleGetDownloads(w http.ResponseWriter, r *http.Request) {
	queues, err := h.ApiClient.GetDownloads(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, queues)
}

func (h *HandlerService) HandleCreateDownload(w http.ResponseWriter, r *http.Request) {
	var req api.DownloadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.CreateDownload(r.Context(), req); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleDeleteDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.DeleteDownload(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleKillDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.KillDownload(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleKillAllDownloads(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.KillAllDownloads(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleEnableDownloads(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.EnableDownloads(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleClearCompletedDownloads(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.ClearCompletedDownloads(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleClearFailedDownloads(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.ClearFailedDownloads(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleGetDownloaders(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.ApiClient.GetDownloaders(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, catalog)
}
