package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"addressbook/internal/delivery/api/response"
	domainerrors "addressbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{
			name:       "not found app error",
			err:        errors.Wrap(domainerrors.ErrAddressNotFound, "address 3"),
			wantStatus: http.StatusNotFound,
			wantCode:   "ADDRESS_NOT_FOUND",
		},
		{
			name:       "validation app error",
			err:        domainerrors.ErrValidationFailed.WithDetails("distance must be non-negative"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "database error is logged",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), ""),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
			wantLogged: true,
		},
		{
			name:       "echo route not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logBuf, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/addresses", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Nil(t, body.Error.Details)
				assert.NotContains(t, rec.Body.String(), "deadlock")
			}

			assert.Equal(t, tt.wantLogged, logBuf.Len() > 0)
		})
	}
}
