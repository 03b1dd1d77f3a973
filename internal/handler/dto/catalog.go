package dto

// Prices are rendered as fixed two-decimal strings.

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductSummaryResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Price        string  `json:"price"`
	ImageURL     *string `json:"imageUrl"`
	CategorySlug string  `json:"categorySlug"`
}

type ProductResponse struct {
	ID           int64   `json:"id"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	CategorySlug string  `json:"categorySlug"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	Price        string  `json:"price"`
	ImageURL     *string `json:"imageUrl"`
	Stock        int     `json:"stock"`
	IsAvailable  bool    `json:"isAvailable"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type ProductDetailResponse struct {
	Product ProductResponse          `json:"product"`
	Related []ProductSummaryResponse `json:"related"`
}
