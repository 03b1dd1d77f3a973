package product

import "tyzox-be/internal/apperror"

var (
	ErrProductNotFound  = apperror.NotFound("product not found")
	ErrCategoryNotFound = apperror.NotFound("category not found")
	ErrProductExists    = apperror.Conflict("product slug already exists")
	ErrInvalidName      = apperror.Validation("product name cannot be empty")
	ErrInvalidPrice     = apperror.Validation("price cannot be negative")
	ErrInvalidStock     = apperror.Validation("stock cannot be negative")
	ErrInvalidCategory  = apperror.Validation("category is required")
)
