package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "addressbook/internal/delivery/context"
	domainerrors "addressbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"id": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":1},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_HidesDetailsOn5xx(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "boom", "secret"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error is written", func(t *testing.T) {
		c, rec := newTestContext()

		err := HandleAppError(c, errors.Wrap(domainerrors.ErrAddressNotFound, "address 9"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ADDRESS_NOT_FOUND"`)
	})

	t.Run("details are forwarded for 4xx", func(t *testing.T) {
		c, rec := newTestContext()

		err := HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("latitude out of range"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"details":"latitude out of range"`)
	})

	t.Run("server errors are returned", func(t *testing.T) {
		c, rec := newTestContext()
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "")

		err := HandleAppError(c, dbErr)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Zero(t, rec.Body.Len())
	})
}
