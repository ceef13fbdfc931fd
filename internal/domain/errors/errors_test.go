package errors

import (
	"net/http"
	"testing"

	"addressbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("latitude must be between -90 and 90")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrAddressNotFound))
	assert.Equal(t, "latitude must be between -90 and 90", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageIsAppError(t *testing.T) {
	err := ErrAddressNotFound.WrapMessage("delete address 42")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "ADDRESS_NOT_FOUND", appErr.ErrorCode())
	assert.Contains(t, err.Error(), "delete address 42")
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to list addresses")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to list addresses", err.Details())
	assert.Contains(t, err.Error(), "connection refused")
}
