package cart

import "tyzox-be/internal/handler/dto"

func ToResponse(v *View) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Slug:      it.Slug,
			ImageURL:  it.ImageURL,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal.StringFixed(2),
		})
	}

	return dto.CartResponse{
		Items:     items,
		Total:     v.Total.StringFixed(2),
		ItemCount: v.ItemCount,
	}
}
