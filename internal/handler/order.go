package handler

import (
	"tyzox-be/internal/handler/dto"
	"tyzox-be/internal/order"
	"tyzox-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader lets clients retry a checkout without creating a
// second order.
const IdempotencyKeyHeader = "Idempotency-Key"

type OrderHandler struct {
	BaseHandler
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	o, err := h.orders.Checkout(c.Request.Context(), order.CheckoutParams{
		UserID:         userID,
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.CheckoutResponse{OrderID: o.ID, Total: o.TotalPrice.StringFixed(2)})
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	list, err := h.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order.ToResponses(list))
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	orderID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	o, err := h.orders.GetOrder(ctx, userID, orderID, utils.IsAdmin(ctx))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order.ToResponse(o))
}
