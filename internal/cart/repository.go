package cart

import (
	"context"
	"database/sql"
	"fmt"

	"tyzox-be/internal/apperror"
	"tyzox-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetOrCreate(ctx context.Context, userID uint) (*Cart, error)
	UpsertItem(ctx context.Context, cartID, productID int64) error
	SetQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	DeleteItem(ctx context.Context, cartID, productID int64) error
	ListItems(ctx context.Context, cartID int64) ([]*Item, error)
	ItemCount(ctx context.Context, cartID int64) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetOrCreate returns the user's cart, creating it on first access. The
// no-op update makes RETURNING yield the existing row on conflict.
func (r *repository) GetOrCreate(ctx context.Context, userID uint) (*Cart, error) {
	var c Cart
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, created_at
	`, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("get or create cart failed",
			zap.String("layer", "repository"),
			zap.String("method", "GetOrCreate"),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	return &c, nil
}

// UpsertItem adds one unit of the product, inserting the line with
// quantity 1 or incrementing it in the same statement.
func (r *repository) UpsertItem(ctx context.Context, cartID, productID int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertItem"),
		zap.Int64("cart_id", cartID),
		zap.Int64("product_id", productID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + 1, updated_at = NOW()
	`, cartID, productID)
	if err != nil {
		switch apperror.PgCode(err) {
		case apperror.PgForeignKeyViolation:
			log.Warn("product vanished before insert", zap.Error(err))
			return apperror.Wrap(ErrProductNotFound, err)
		case apperror.PgCheckViolation:
			log.Info("quantity limit reached", zap.Error(err))
			return apperror.Wrap(ErrQuantityLimit, err)
		}
		log.Error("upsert failed", zap.Error(err))
		return fmt.Errorf("upsert cart item: %w", err)
	}

	return nil
}

func (r *repository) SetQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE cart_id = $2 AND product_id = $3
	`, quantity, cartID, productID)
	if err != nil {
		switch apperror.PgCode(err) {
		case apperror.PgCheckViolation, apperror.PgNumericOutOfRange:
			return apperror.Wrap(ErrInvalidQuantity, err)
		}
		return fmt.Errorf("update cart item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) DeleteItem(ctx context.Context, cartID, productID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) ListItems(ctx context.Context, cartID int64) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.slug, p.image_url, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id ASC
	`, cartID)
	if err != nil {
		logger.FromCtx(ctx).Error("list cart items failed",
			zap.String("layer", "repository"),
			zap.String("method", "ListItems"),
			zap.Int64("cart_id", cartID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Slug, &it.ImageURL, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}

	return items, rows.Err()
}

func (r *repository) ItemCount(ctx context.Context, cartID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM cart_items
		WHERE cart_id = $1
	`, cartID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cart items: %w", err)
	}
	return count, nil
}
