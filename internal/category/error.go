package category

import "tyzox-be/internal/apperror"

var (
	ErrCategoryNotFound = apperror.NotFound("category not found")
	ErrCategoryExists   = apperror.Conflict("category name or slug already exists")
	ErrCategoryInUse    = apperror.Conflict("category still has products")
	ErrInvalidName      = apperror.Validation("category name cannot be empty")
)
