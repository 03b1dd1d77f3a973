package recommendation

import (
	"context"

	"tyzox-be/internal/logger"
	"tyzox-be/internal/metrics"
	"tyzox-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	RecordCoPurchase(ctx context.Context, productIDs []int64) (int64, error)
	Related(ctx context.Context, productID int64, limit int) ([]*product.Summary, error)
	Neighbors(ctx context.Context, productID int64) ([]int64, error)
	Link(ctx context.Context, a, b int64) error
	Unlink(ctx context.Context, a, b int64) error
}

type service struct {
	repo    Repository
	metrics *metrics.Registry
}

func NewService(repo Repository, m *metrics.Registry) Service {
	return &service{repo: repo, metrics: m}
}

// RecordCoPurchase relates every pair of distinct products bought together.
// It returns the number of edges that did not exist before.
func (s *service) RecordCoPurchase(ctx context.Context, productIDs []int64) (int64, error) {
	edges := Pairs(productIDs)
	if len(edges) == 0 {
		return 0, nil
	}

	added, err := s.repo.InsertEdges(ctx, edges)
	if err != nil {
		return 0, err
	}

	if s.metrics != nil && added > 0 {
		s.metrics.CoPurchaseEdges.Add(uint64(added))
	}

	logger.FromCtx(ctx).Info("co-purchase recorded",
		zap.String("layer", "service"),
		zap.Int("products", len(productIDs)),
		zap.Int("pairs", len(edges)),
		zap.Int64("added", added),
	)
	return added, nil
}

func (s *service) Related(ctx context.Context, productID int64, limit int) ([]*product.Summary, error) {
	if limit <= 0 {
		limit = product.RelatedLimit
	}
	return s.repo.Related(ctx, productID, limit)
}

func (s *service) Neighbors(ctx context.Context, productID int64) ([]int64, error) {
	return s.repo.Neighbors(ctx, productID)
}

func (s *service) Link(ctx context.Context, a, b int64) error {
	e, ok := NewEdge(a, b)
	if !ok {
		return ErrSelfRelation
	}
	_, err := s.repo.InsertEdges(ctx, []Edge{e})
	return err
}

func (s *service) Unlink(ctx context.Context, a, b int64) error {
	e, ok := NewEdge(a, b)
	if !ok {
		return ErrSelfRelation
	}
	return s.repo.DeleteEdge(ctx, e)
}
