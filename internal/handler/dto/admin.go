package dto

type ProductRequest struct {
	CategoryID  int64   `json:"categoryId" binding:"required,gt=0"`
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	Price       string  `json:"price" binding:"required,numeric"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=1024"`
	Stock       int     `json:"stock" binding:"gte=0"`
	IsAvailable *bool   `json:"isAvailable"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type SalesRowResponse struct {
	ProductID    *int64 `json:"productId"`
	ProductName  string `json:"productName"`
	CategoryName string `json:"categoryName"`
	TotalSold    int64  `json:"totalSold"`
	TotalRevenue string `json:"totalRevenue"`
}
