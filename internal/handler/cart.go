package handler

import (
	"tyzox-be/internal/cart"
	"tyzox-be/internal/handler/dto"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	BaseHandler
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	view, err := h.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart.ToResponse(view))
}

func (h *CartHandler) Count(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	count, err := h.carts.ItemCount(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CartCountResponse{ItemCount: count})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	count, err := h.carts.AddItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CartCountResponse{ItemCount: count})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	productID, ok := h.pathID(c, "productId")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	count, err := h.carts.UpdateQuantity(c.Request.Context(), userID, productID, *req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CartCountResponse{ItemCount: count})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	productID, ok := h.pathID(c, "productId")
	if !ok {
		return
	}

	count, err := h.carts.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.CartCountResponse{ItemCount: count})
}
