package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/bluelatex/blue-web/internal/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation uses its own status and field",
			err:        fmt.Errorf("set style: %w", apperrors.ValidationField("style", `unknown style "tiles"`)),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"validation","message":"unknown style \"tiles\"","field":"style"}`,
		},
		{
			name:       "backend status",
			err:        apperrors.Auth(""),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"auth","message":"Unauthorized"}`,
		},
		{
			name:       "explicit status wins",
			status:     http.StatusServiceUnavailable,
			err:        apperrors.Wrap(errors.New("dial tcp: refused"), apperrors.ErrCodeInternal, "database unavailable"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"internal","message":"database unavailable"}`,
		},
		{
			name:       "plain errors stay private",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal","message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.status, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
