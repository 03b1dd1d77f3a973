package dto

import (
	"net/http"

	"tyzox-be/internal/apperror"
)

const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeConflict     = "ERR_CONFLICT"
	ErrCodeRateLimited  = "ERR_RATE_LIMITED"
	ErrCodeInternal     = "ERR_INTERNAL"
)

var statusByCode = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the status for an error code, 500 when unknown.
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// CodeForKind maps an application error kind to its wire code.
func CodeForKind(kind apperror.Kind) string {
	switch kind {
	case apperror.KindNotFound:
		return ErrCodeNotFound
	case apperror.KindValidation:
		return ErrCodeValidation
	case apperror.KindUnauthorized:
		return ErrCodeUnauthorized
	case apperror.KindPermissionDenied:
		return ErrCodeForbidden
	case apperror.KindConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternal
	}
}
