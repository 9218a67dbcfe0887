package errors

import (
	"net/http"
	"testing"

	"crossing/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError_NamesField(t *testing.T) {
	err := NewValidationError("longitude", "must be within [-180, 180]")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Contains(t, err.Details(), "longitude")
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrUserNotFound))
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrUserNotFound.WrapMessage("load subject")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.True(t, errors.Is(wrapped, ErrUserNotFound))
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert match records")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "insert match records")
}

func TestCacheExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := NewCacheExecuteError(cause, "geoadd")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "CACHE_EXECUTE_FAILED", err.ErrorCode())
}
