package dto

import (
	"net/http"
	"testing"

	"tyzox-be/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestCodeForKind(t *testing.T) {
	tests := []struct {
		kind   apperror.Kind
		code   string
		status int
	}{
		{apperror.KindNotFound, ErrCodeNotFound, http.StatusNotFound},
		{apperror.KindValidation, ErrCodeValidation, http.StatusBadRequest},
		{apperror.KindUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized},
		{apperror.KindPermissionDenied, ErrCodeForbidden, http.StatusForbidden},
		{apperror.KindConflict, ErrCodeConflict, http.StatusConflict},
		{apperror.KindInternal, ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			code := CodeForKind(tt.kind)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.status, GetHTTPStatus(code))
		})
	}
}

func TestGetHTTPStatus_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_SOMETHING"))
	assert.Equal(t, http.StatusTooManyRequests, GetHTTPStatus(ErrCodeRateLimited))
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("bad", "req-1", []ValidationDetail{{Field: "email", Message: "is required"}})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 1)
}
