package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := New(CodeTargetNotFound, "Target user not found", http.StatusNotFound)
	assert.Equal(t, "TARGET_NOT_FOUND: Target user not found", plain.Error())

	wrapped := Wrap(errors.New("connection reset"), CodeRoleUpdateFail, "Failed to update role", http.StatusInternalServerError)
	assert.Equal(t, "ROLE_UPDATE_FAILED: Failed to update role: connection reset", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("db down")
	wrapped := Wrap(cause, CodeInternal, "Internal server error", http.StatusInternalServerError)
	assert.ErrorIs(t, wrapped, cause)
}

func TestConstructorsSetStatus(t *testing.T) {
	tests := []struct {
		err        *AppError
		wantStatus int
	}{
		{NotFound(CodeTargetNotFound, "Target user not found"), http.StatusNotFound},
		{BadRequest(CodeInvalidRole, "Invalid role"), http.StatusBadRequest},
		{Unauthorized(CodeNoAuthHeader, "No authorization header"), http.StatusUnauthorized},
		{Forbidden(CodeNotAdmin, "Unauthorized: Admin access required"), http.StatusForbidden},
		{Internal(CodeInternal, "Internal server error"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := Forbidden(CodeNotAdmin, "Unauthorized: Admin access required")

	got, ok := IsAppError(fmt.Errorf("handler: %w", appErr))
	require.True(t, ok)
	assert.Equal(t, CodeNotAdmin, got.Code)

	_, ok = IsAppError(errors.New("plain"))
	assert.False(t, ok)
}
