package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CategorySlug string          `json:"category_slug"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Stock        int             `json:"stock"`
	IsAvailable  bool            `json:"is_available"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Summary is the catalog card shape used by listings and related products.
type Summary struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     *string         `json:"image_url,omitempty"`
	CategorySlug string          `json:"category_slug"`
}

type Detail struct {
	Product *Product
	Related []*Summary
}

// Input carries the admin-editable fields of a product.
type Input struct {
	CategoryID  int64
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Stock       int
	IsAvailable bool
}

// RelatedLimit caps the related products shown on a detail page.
const RelatedLimit = 4
