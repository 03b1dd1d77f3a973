package category

import (
	"context"
	"strings"

	"tyzox-be/internal/logger"
	"tyzox-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the catalog category operations.
type Service interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, name string) (*Category, error)
	Rename(ctx context.Context, id int64, name string) (*Category, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// Create stores a category whose slug is derived from its name.
func (s *service) Create(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	slug := utils.Slugify(name)
	if name == "" || slug == "" {
		return nil, ErrInvalidName
	}

	c, err := s.repo.Create(ctx, name, slug)
	if err != nil {
		logger.FromCtx(ctx).Warn("create category failed",
			zap.String("layer", "service"),
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}

	return c, nil
}

// Rename changes only the display name; the slug stays stable for existing links.
func (s *service) Rename(ctx context.Context, id int64, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return s.repo.Rename(ctx, id, name)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.FromCtx(ctx).Warn("delete category failed",
			zap.String("layer", "service"),
			zap.Int64("category_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
