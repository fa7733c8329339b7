package responses

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	requestLogger := zerolog.Ctx(r.Context())

	var logEvent *zerolog.Event
	switch {
	case statusCode >= 500:
		logEvent = requestLogger.Error()
	case statusCode >= 400:
		logEvent = requestLogger.Warn()
	default:
		logEvent = requestLogger.Info()
	}

	logEvent.
		Int("status", statusCode).
		Str("error_message", message).
		Msg("Request failed")

	errResponse := ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}

	dat, err := json.Marshal(errResponse)
	if err != nil {
		requestLogger.Error().
			Err(err).
			Msg("error marshaling error response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(dat)
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
