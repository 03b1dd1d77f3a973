package order

import (
	"time"

	"tyzox-be/internal/handler/dto"
)

func ToResponse(o *Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice.StringFixed(2),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}

	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			CategoryName: it.CategoryName,
			Quantity:     it.Quantity,
			Price:        it.Price.StringFixed(2),
		})
	}
	return resp
}

func ToResponses(list []*Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToResponse(o))
	}
	return out
}
