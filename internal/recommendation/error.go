package recommendation

import "tyzox-be/internal/apperror"

var (
	ErrSelfRelation    = apperror.Validation("a product cannot be related to itself")
	ErrProductNotFound = apperror.NotFound("product not found")
	ErrEdgeNotFound    = apperror.NotFound("products are not related")
)
