package handlers

import (
	"net/http"

	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/ui/responses"
)

// searchRequest is the browser-side search form for all three search pages.
type searchRequest struct {
	SearchStr string   `json:"search_str"`
	Limit     int      `json:"limit"`
	Offset    int      `json:"offset"`
	Mimetypes []string `json:"mimetypes"`
	TagNames  []string `json:"tag_names"`
	ChannelID int64    `json:"channel_id"`
	Order     string   `json:"order_by"`
	Domain    string   `json:"domain"`
}

// searchResponse preserves the backend's envelope shape for the browser.
type searchResponse struct {
	FileGroups []api.FileGroup `json:"file_groups"`
	Total      int             `json:"total"`
}

func (h *HandlerService) HandleSearchFiles(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	groups, total, err := h.ApiClient.SearchFiles(r.Context(), api.FileSearchParams{
		SearchStr: req.SearchStr,
		Limit:     req.Limit,
		Offset:    req.Offset,
		Mimetypes: req.Mimetypes,
		TagNames:  req.TagNames,
	})
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, searchResponse{FileGroups: groups, Total: total})
}

func (h *HandlerService) HandleSearchVideos(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	groups, total, err := h.ApiClient.SearchVideos(r.Context(), api.VideoSearchParams{
		SearchStr: req.SearchStr,
		Limit:     req.Limit,
		Offset:    req.Offset,
		ChannelID: req.ChannelID,
		Order:     req.Order,
	})
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, searchResponse{FileGroups: groups, Total: total})
}

func (h *HandlerService) HandleSearchArchives(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	groups, total, err := h.ApiClient.SearchArchives(r.Context(), api.ArchiveSearchParams{
		SearchStr: req.SearchStr,
		Limit:     req.Limit,
		Offset:    req.Offset,
		Domain:    req.Domain,
	})
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, searchResponse{FileGroups: groups, Total: total})
}

// HandleDomains returns the archived domains list.
func (h *HandlerService) HandleDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.ApiClient.GetDomains(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, map[string]any{"domains": domains})
}
