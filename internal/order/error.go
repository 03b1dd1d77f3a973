package order

import "tyzox-be/internal/apperror"

var (
	ErrCartNotFound      = apperror.NotFound("cart not found")
	ErrCartEmpty         = apperror.Validation("cart is empty")
	ErrOrderNotFound     = apperror.NotFound("order not found")
	ErrDuplicateCheckout = apperror.Conflict("checkout already in progress for this idempotency key")
)
