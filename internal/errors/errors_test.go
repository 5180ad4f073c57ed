package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	withCause := NewParsingError("failed to read CSV header", fmt.Errorf("unexpected EOF"))
	assert.Equal(t, "[PARSING] failed to read CSV header: unexpected EOF", withCause.Error())

	withoutCause := NewValidationError("bad row")
	assert.Equal(t, "[VALIDATION] bad row", withoutCause.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPermissionError("cannot read input file", cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, ErrTypePermission, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewStorageError("failed to open file", nil).
		WithContext("path", "data/sales.csv").
		WithContext("attempt", 1)

	assert.Equal(t, "data/sales.csv", err.Context["path"])
	assert.Equal(t, 1, err.Context["attempt"])
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("input file")

	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Equal(t, "[NOT_FOUND] input file not found", err.Error())
}
