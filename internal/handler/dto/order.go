package dto

type CheckoutResponse struct {
	OrderID int64  `json:"orderId"`
	Total   string `json:"total"`
}

type OrderItemResponse struct {
	ID           int64  `json:"id"`
	ProductID    *int64 `json:"productId"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
}

type OrderResponse struct {
	ID         int64               `json:"id"`
	UserID     uint                `json:"userId"`
	TotalPrice string              `json:"totalPrice"`
	CreatedAt  string              `json:"createdAt"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}
