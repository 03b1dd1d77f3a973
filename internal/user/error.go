package user

import "tyzox-be/internal/apperror"

var (
	ErrEmailExists        = apperror.Conflict("email already registered")
	ErrPasswordMismatch   = apperror.Validation("passwords do not match")
	ErrEmptyCredentials   = apperror.Validation("email and password are required")
	ErrPasswordTooShort   = apperror.Validation("password must be at least 8 characters")
	ErrInvalidCredentials = apperror.Unauthorized("invalid email or password")
	ErrUserNotFound       = apperror.NotFound("user not found")
)
