package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tyzox-be/internal/apperror"
	"tyzox-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListAvailable(ctx context.Context, categorySlug string) ([]*Summary, error)
	GetAvailableBySlug(ctx context.Context, slug string) (*Product, error)
	GetAvailableByID(ctx context.Context, id int64) (*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	Create(ctx context.Context, in Input, slug string) (*Product, error)
	Update(ctx context.Context, id int64, in Input) (*Product, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.category_id, c.name, c.slug,
	p.name, p.slug, p.description, p.price, p.image_url,
	p.stock, p.is_available, p.created_at, p.updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.CategoryName, &p.CategorySlug,
		&p.Name, &p.Slug, &p.Description, &p.Price, &p.ImageURL,
		&p.Stock, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAvailable returns available products ordered by name, optionally
// restricted to one category slug.
func (r *repository) ListAvailable(ctx context.Context, categorySlug string) ([]*Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListAvailable"),
		zap.String("category_slug", categorySlug),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.slug, p.price, p.image_url, c.slug
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.is_available = TRUE
		  AND ($1 = '' OR c.slug = $1)
		ORDER BY p.name ASC
	`, categorySlug)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Price, &s.ImageURL, &s.CategorySlug); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, &s)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("available products listed", zap.Int("count", len(products)))
	return products, nil
}

func (r *repository) GetAvailableBySlug(ctx context.Context, slug string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1 AND p.is_available = TRUE
	`, slug)
	return r.scanOne(ctx, row, "GetAvailableBySlug")
}

func (r *repository) GetAvailableByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1 AND p.is_available = TRUE
	`, id)
	return r.scanOne(ctx, row, "GetAvailableByID")
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id)
	return r.scanOne(ctx, row, "GetByID")
}

func (r *repository) scanOne(ctx context.Context, row *sql.Row, method string) (*Product, error) {
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("product lookup failed",
			zap.String("layer", "repository"),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) Create(ctx context.Context, in Input, slug string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("slug", slug),
	)

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (category_id, name, slug, description, price, image_url, stock, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		in.CategoryID, in.Name, slug, in.Description, in.Price, in.ImageURL, in.Stock, in.IsAvailable,
	).Scan(&id)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			log.Warn("product insert rejected", zap.Error(err))
			return nil, mapped
		}
		log.Error("insert failed", zap.Error(err))
		return nil, fmt.Errorf("create product: %w", err)
	}

	log.Info("product created", zap.Int64("product_id", id))
	return r.GetByID(ctx, id)
}

func (r *repository) Update(ctx context.Context, id int64, in Input) (*Product, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET category_id = $1,
		    name = $2,
		    description = $3,
		    price = $4,
		    image_url = $5,
		    stock = $6,
		    is_available = $7,
		    updated_at = NOW()
		WHERE id = $8
	`,
		in.CategoryID, in.Name, in.Description, in.Price, in.ImageURL, in.Stock, in.IsAvailable, id,
	)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the product. Cart lines and relation edges cascade;
// order lines keep their name snapshot with a NULL product reference.
func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	logger.FromCtx(ctx).Info("product deleted",
		zap.String("layer", "repository"),
		zap.Int64("product_id", id),
	)
	return nil
}

func mapWriteError(err error) error {
	switch apperror.PgCode(err) {
	case apperror.PgUniqueViolation:
		return apperror.Wrap(ErrProductExists, err)
	case apperror.PgForeignKeyViolation:
		return apperror.Wrap(ErrCategoryNotFound, err)
	case apperror.PgCheckViolation:
		return apperror.Wrap(ErrInvalidPrice, err)
	}
	return nil
}
