package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleGetChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.ApiClient.GetChannels(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"channels": channels})
}

func (h *HandlerService) HandleGetChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	channel, err := h.ApiClient.GetChannel(r.Context(), id)
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"channel": channel})
}

func (h *HandlerService) HandleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req api.ChannelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.CreateChannel(r.Context(), req); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleUpdateChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req api.ChannelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.UpdateChannel(r.Context(), id, req); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.DeleteChannel(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleChannelDownloads(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	downloads, err := h.ApiClient.GetChannelDownloads(r.Context(), id)
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"downloads": downloads})
}

func (h *HandlerService) HandleDownloadChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.DownloadChannel(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}
