package handler

import (
	"tyzox-be/internal/category"
	"tyzox-be/internal/product"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public storefront pages.
type CatalogHandler struct {
	BaseHandler
	products   product.Service
	categories category.Service
}

func NewCatalogHandler(products product.Service, categories category.Service) *CatalogHandler {
	return &CatalogHandler{products: products, categories: categories}
}

// ListProducts lists available products, optionally narrowed by ?category=<slug>.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.products.ListAvailable(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product.ToSummaryResponses(list))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	detail, err := h.products.GetDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product.ToDetailResponse(detail))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category.ToResponses(list))
}
