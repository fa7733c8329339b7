// Package handlers implements the /ui-api endpoints consumed by the browser
// bundle. Handlers are thin: they decode the request, call the api client,
// and render JSON. Application errors have already been converted into
// notifications by the client layer, so handlers only translate transport
// failures into HTTP errors.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/notify"
	"github.com/homearc/homearc/internal/poll"
	"github.com/homearc/homearc/internal/ui/responses"
	"github.com/rs/zerolog"
)

type HandlerService struct {
	ApiClient   *api.Client
	Store       *poll.Store
	Hub         *notify.Hub
	Environment string
}

const backendUnreachableMsg = "The appliance backend did not respond. Please try again."

// decodeBody unmarshals a JSON request body, responding 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, "Could not parse the request body.")
		return false
	}
	return true
}

// urlID parses the {id} route parameter, responding 400 on failure.
func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, "Invalid id in URL.")
		return 0, false
	}
	return id, true
}

// respondTransportFailure logs the error and answers 502; the browser shows
// its offline banner on this status.
func respondTransportFailure(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("backend call failed")
	responses.RespondWithError(w, r, http.StatusBadGateway, backendUnreachableMsg)
}
