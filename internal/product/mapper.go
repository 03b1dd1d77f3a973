package product

import (
	"time"

	"tyzox-be/internal/handler/dto"

	"github.com/shopspring/decimal"
)

func ToSummaryResponse(s *Summary) dto.ProductSummaryResponse {
	return dto.ProductSummaryResponse{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Price:        s.Price.StringFixed(2),
		ImageURL:     s.ImageURL,
		CategorySlug: s.CategorySlug,
	}
}

func ToSummaryResponses(list []*Summary) []dto.ProductSummaryResponse {
	out := make([]dto.ProductSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSummaryResponse(s))
	}
	return out
}

func ToResponse(p *Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CategorySlug: p.CategorySlug,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price.StringFixed(2),
		ImageURL:     p.ImageURL,
		Stock:        p.Stock,
		IsAvailable:  p.IsAvailable,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponses(list []*Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToResponse(p))
	}
	return out
}

func ToDetailResponse(d *Detail) dto.ProductDetailResponse {
	return dto.ProductDetailResponse{
		Product: ToResponse(d.Product),
		Related: ToSummaryResponses(d.Related),
	}
}

// InputFromRequest converts an admin payload. A missing isAvailable means true.
func InputFromRequest(req dto.ProductRequest) (Input, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return Input{}, ErrInvalidPrice
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return Input{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsAvailable: available,
	}, nil
}
