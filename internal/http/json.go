package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/bluelatex/blue-web/internal/errors"
)

// WriteJSON encodes v and writes it with status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
}

// errorBody is the JSON shape of action errors.
type errorBody struct {
	Code    apperrors.ErrorCode `json:"error"`
	Message string              `json:"message"`
	Field   string              `json:"field,omitempty"`
}

// WriteError reports err as JSON. A zero status uses the status the error
// carries, falling back to 500. Only AppError messages reach the client.
func WriteError(w http.ResponseWriter, status int, err error) {
	body := errorBody{Code: apperrors.ErrCodeInternal}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body = errorBody{Code: appErr.Code, Message: appErr.Message, Field: appErr.Field}
		if status == 0 {
			status = appErr.Status
		}
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if body.Message == "" {
		body.Message = http.StatusText(status)
	}
	WriteJSON(w, status, body)
}
