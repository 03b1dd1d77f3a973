package product

import (
	"context"
	"strings"
	"time"

	"tyzox-be/internal/logger"
	"tyzox-be/internal/utils"

	"go.uber.org/zap"
)

// RelatedLister supplies the co-purchase neighbours shown on a detail page.
type RelatedLister interface {
	Related(ctx context.Context, productID int64, limit int) ([]*Summary, error)
}

type Service interface {
	ListAvailable(ctx context.Context, categorySlug string) ([]*Summary, error)
	GetDetail(ctx context.Context, slug string) (*Detail, error)
	ListAll(ctx context.Context) ([]*Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, in Input) (*Product, error)
	Update(ctx context.Context, id int64, in Input) (*Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo    Repository
	related RelatedLister
}

func NewService(repo Repository, related RelatedLister) Service {
	return &service{repo: repo, related: related}
}

func (s *service) ListAvailable(ctx context.Context, categorySlug string) ([]*Summary, error) {
	return s.repo.ListAvailable(ctx, strings.TrimSpace(categorySlug))
}

// GetDetail returns an available product with up to RelatedLimit related
// products. A failing related lookup degrades to an empty list.
func (s *service) GetDetail(ctx context.Context, slug string) (*Detail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetDetail"),
		zap.String("slug", slug),
	)

	start := time.Now()

	p, err := s.repo.GetAvailableBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	related := []*Summary{}
	if s.related != nil {
		found, err := s.related.Related(ctx, p.ID, RelatedLimit)
		if err != nil {
			log.Warn("related products lookup failed", zap.Int64("product_id", p.ID), zap.Error(err))
		} else {
			related = found
		}
	}

	log.Debug("product detail loaded",
		zap.Int64("product_id", p.ID),
		zap.Int("related", len(related)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Detail{Product: p, Related: related}, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input and stores the product under a slug derived
// from its name.
func (s *service) Create(ctx context.Context, in Input) (*Product, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	slug := utils.Slugify(in.Name)
	if slug == "" {
		return nil, ErrInvalidName
	}

	return s.repo.Create(ctx, in, slug)
}

// Update replaces the editable fields. The slug is kept so that existing
// links stay valid.
func (s *service) Update(ctx context.Context, id int64, in Input) (*Product, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)

	switch {
	case in.Name == "":
		return in, ErrInvalidName
	case in.CategoryID <= 0:
		return in, ErrInvalidCategory
	case in.Price.IsNegative():
		return in, ErrInvalidPrice
	case in.Stock < 0:
		return in, ErrInvalidStock
	}

	in.Price = in.Price.Round(2)
	if in.ImageURL != nil && strings.TrimSpace(*in.ImageURL) == "" {
		in.ImageURL = nil
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		in.Description = nil
	}

	return in, nil
}
