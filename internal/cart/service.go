package cart

import (
	"context"
	"errors"

	"tyzox-be/internal/logger"
	"tyzox-be/internal/metrics"
	"tyzox-be/internal/product"

	"go.uber.org/zap"
)

// ProductLookup resolves products that can currently be sold.
type ProductLookup interface {
	GetAvailableByID(ctx context.Context, id int64) (*product.Product, error)
}

type Service interface {
	AddItem(ctx context.Context, userID uint, productID int64) (int, error)
	GetCart(ctx context.Context, userID uint) (*View, error)
	UpdateQuantity(ctx context.Context, userID uint, productID int64, quantity int) (int, error)
	RemoveItem(ctx context.Context, userID uint, productID int64) (int, error)
	ItemCount(ctx context.Context, userID uint) (int, error)
}

type service struct {
	repo     Repository
	products ProductLookup
	metrics  *metrics.Registry
}

func NewService(repo Repository, products ProductLookup, m *metrics.Registry) Service {
	return &service{repo: repo, products: products, metrics: m}
}

// AddItem puts one unit of an available product into the user's cart and
// returns the new item count.
func (s *service) AddItem(ctx context.Context, userID uint, productID int64) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.Int64("product_id", productID),
	)

	p, err := s.products.GetAvailableByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}

	c, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.repo.UpsertItem(ctx, c.ID, p.ID); err != nil {
		return 0, err
	}

	count, err := s.repo.ItemCount(ctx, c.ID)
	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.CartAdds.Inc()
	}

	log.Info("item added to cart",
		zap.Int64("cart_id", c.ID),
		zap.Int("item_count", count),
	)
	return count, nil
}

func (s *service) GetCart(ctx context.Context, userID uint) (*View, error) {
	c, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return NewView(c.ID, items), nil
}

func (s *service) UpdateQuantity(ctx context.Context, userID uint, productID int64, quantity int) (int, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return 0, ErrInvalidQuantity
	}

	c, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.repo.SetQuantity(ctx, c.ID, productID, quantity); err != nil {
		return 0, err
	}

	return s.repo.ItemCount(ctx, c.ID)
}

func (s *service) RemoveItem(ctx context.Context, userID uint, productID int64) (int, error) {
	c, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.repo.DeleteItem(ctx, c.ID, productID); err != nil {
		return 0, err
	}

	return s.repo.ItemCount(ctx, c.ID)
}

func (s *service) ItemCount(ctx context.Context, userID uint) (int, error) {
	c, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.repo.ItemCount(ctx, c.ID)
}
