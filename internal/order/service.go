package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tyzox-be/internal/idempotency"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/metrics"

	"go.uber.org/zap"
)

// GraphRecorder receives the products of every committed order.
type GraphRecorder interface {
	RecordCoPurchase(ctx context.Context, productIDs []int64) (int64, error)
}

type Service interface {
	Checkout(ctx context.Context, params CheckoutParams) (*Order, error)
	ListOrders(ctx context.Context, userID uint) ([]*Order, error)
	GetOrder(ctx context.Context, userID uint, orderID int64, isAdmin bool) (*Order, error)
}

type service struct {
	repo    Repository
	graph   GraphRecorder
	keys    idempotency.Store
	keyTTL  time.Duration
	metrics *metrics.Registry
}

func NewService(
	repo Repository,
	graph GraphRecorder,
	keys idempotency.Store,
	keyTTL time.Duration,
	m *metrics.Registry,
) Service {
	if m == nil {
		m = metrics.NewRegistry()
	}
	return &service{
		repo:    repo,
		graph:   graph,
		keys:    keys,
		keyTTL:  keyTTL,
		metrics: m,
	}
}

// Checkout turns the user's cart into an order. The co-purchase graph is
// updated after the order commits; a graph failure does not fail checkout.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)

	timer := metrics.StartTimer()

	/* ---------- IDEMPOTENCY ---------- */

	key := ""
	if s.keys != nil && strings.TrimSpace(params.IdempotencyKey) != "" {
		key = fmt.Sprintf("checkout:%d:%s", params.UserID, strings.TrimSpace(params.IdempotencyKey))

		acquired, err := s.keys.Acquire(ctx, key, s.keyTTL)
		if err != nil {
			log.Error("idempotency store unavailable", zap.Error(err))
			s.metrics.CheckoutFailures.Inc()
			return nil, err
		}
		if !acquired {
			log.Warn("duplicate checkout rejected")
			s.metrics.CheckoutDuplicates.Inc()
			return nil, ErrDuplicateCheckout
		}
	}

	/* ---------- TRANSACTION ---------- */

	o, productIDs, err := s.repo.Checkout(ctx, params.UserID)
	if err != nil {
		s.metrics.CheckoutFailures.Inc()
		if key != "" {
			if relErr := s.keys.Release(ctx, key); relErr != nil {
				log.Warn("failed to release idempotency key", zap.Error(relErr))
			}
		}
		log.Warn("checkout failed", zap.Error(err))
		return nil, err
	}

	/* ---------- GRAPH UPDATE ---------- */

	if s.graph != nil {
		if _, err := s.graph.RecordCoPurchase(ctx, productIDs); err != nil {
			s.metrics.GraphFailures.Inc()
			log.Error("failed to record co-purchase",
				zap.Int64("order_id", o.ID),
				zap.Int64s("product_ids", productIDs),
				zap.Error(err),
			)
		}
	}

	s.metrics.ObserveCheckout(timer.Duration())

	log.Info("checkout completed",
		zap.Int64("order_id", o.ID),
		zap.Duration("duration", timer.Duration()),
	)
	return o, nil
}

func (s *service) ListOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetOrder returns an order to its owner or an admin. Other users get
// ErrOrderNotFound so order ids are not disclosed.
func (s *service) GetOrder(ctx context.Context, userID uint, orderID int64, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		logger.FromCtx(ctx).Warn("order access denied",
			zap.String("layer", "service"),
			zap.Int64("order_id", orderID),
		)
		return nil, ErrOrderNotFound
	}

	return o, nil
}
