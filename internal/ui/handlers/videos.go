package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleGetVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	video, err := h.ApiClient.GetVideo(r.Context(), id)
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, video)
}

func (h *HandlerService) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.ApiClient.DeleteVideo(r.Context(), id); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleVideoFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VideoID  int64 `json:"video_id"`
		Favorite bool  `json:"favorite"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	favorite, err := h.ApiClient.SetVideoFavorite(r.Context(), req.VideoID, req.Favorite)
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"video_id": req.VideoID, "favorite": favorite})
}

func (h *HandlerService) HandleVideosStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ApiClient.GetVideosStatistics(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, stats)
}
