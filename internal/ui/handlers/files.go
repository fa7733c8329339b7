package handlers

import (
	"net/http"

	homearc "github.com/homearc/homearc"
	"github.com/homearc/homearc/internal/ui/responses"
)

func (h *HandlerService) HandleListDirectory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Directory string `json:"directory"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	listing, err := h.ApiClient.ListDirectory(r.Context(), req.Directory)
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, listing)
}

func (h *HandlerService) HandleDeleteFiles(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Paths []string `json:"paths"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.ApiClient.DeleteFiles(r.Context(), req.Paths); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleRefreshFiles(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.RefreshFiles(r.Context()); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HandlerService) HandleRefreshProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.ApiClient.GetRefreshProgress(r.Context())
	if err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusOK, progress)
}

// HandleUpload forwards one multipart upload from the browser to the backend.
func (h *HandlerService) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, homearc.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, "Could not read the uploaded file.")
		return
	}
	defer func() { _ = file.Close() }()

	destination := r.FormValue("destination")
	if destination == "" {
		responses.RespondWithError(w, r, http.StatusBadRequest, "A destination directory is required.")
		return
	}

	if err := h.ApiClient.UploadFile(r.Context(), destination, header.Filename, file); err != nil {
		respondTransportFailure(w, r, err)
		return
	}
	responses.RespondWithJSON(w, http.StatusNoContent, nil)
}
