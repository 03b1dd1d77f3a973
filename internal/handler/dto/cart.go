package dto

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=1,lte=9999"`
}

type CartCountResponse struct {
	ItemCount int `json:"itemCount"`
}

type CartItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	ImageURL  *string `json:"imageUrl"`
	UnitPrice string  `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  string  `json:"subtotal"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Total     string             `json:"total"`
	ItemCount int                `json:"itemCount"`
}
