package api

import (
	"encoding/json"
	"fmt"

	"github.com/homearc/homearc/internal/apperrors"
)

// Outcome is the classified result of one backend call that produced an HTTP
// response. Transport failures never produce an Outcome - they are returned
// as errors by the executor.
type Outcome struct {
	Status int
	Body   []byte

	// AppErr is set when Status is outside [200,300).
	AppErr *AppError
}

// OK reports whether the response carried a success status.
func (o *Outcome) OK() bool {
	return o.Status >= 200 && o.Status < 300
}

// Decode unmarshals the success payload into dest.
func (o *Outcome) Decode(dest any) error {
	if err := json.Unmarshal(o.Body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// AppError is a well-formed backend error response. The backend sends JSON
// bodies shaped as {"message": ..., "api_error": ..., "code": N}; all fields
// are read defensively since error bodies may be absent or not JSON at all.
type AppError struct {
	Status   int                 `json:"-"`
	Code     apperrors.ErrorCode `json:"code"`
	Message  string              `json:"message"`
	APIError string              `json:"api_error"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend status %d (%s)", e.Status, e.Code)
}

// decodeAppError builds an AppError from a non-2xx response body.
func decodeAppError(status int, body []byte) *AppError {
	appErr := &AppError{Status: status}
	if len(body) > 0 {
		// a non-JSON body leaves the zero values in place
		_ = json.Unmarshal(body, appErr)
	}
	appErr.Status = status
	return appErr
}
