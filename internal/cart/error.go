package cart

import "tyzox-be/internal/apperror"

// MaxQuantity caps a single cart line so checkout totals stay within the
// order price columns.
const MaxQuantity = 9999

var (
	ErrProductNotFound  = apperror.NotFound("product not found or unavailable")
	ErrCartItemNotFound = apperror.NotFound("cart item not found")
	ErrInvalidQuantity  = apperror.Validation("quantity must be between 1 and 9999")
	ErrQuantityLimit    = apperror.Validation("cart line already holds the maximum quantity")
)
