package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tyzox-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	// Checkout converts the user's cart into an order in one transaction and
	// returns the order with the distinct product ids it contains.
	Checkout(ctx context.Context, userID uint) (*Order, []int64, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetByID(ctx context.Context, orderID int64) (*Order, error)
}

type repository struct {
	db *sql.DB

	// beforeClear runs after the order rows are written and before the cart
	// is emptied. Tests use it to inject a failure mid-transaction.
	beforeClear func(ctx context.Context) error
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Checkout(ctx context.Context, userID uint) (*Order, []int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Checkout"),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	/* ---------- LOCK CART ---------- */

	var cartID int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM carts WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrCartNotFound
	}
	if err != nil {
		log.Error("failed to lock cart", zap.Error(err))
		return nil, nil, err
	}

	/* ---------- READ LINES ---------- */

	lines, err := readCartLines(ctx, tx, cartID)
	if err != nil {
		log.Error("failed to read cart lines", zap.Int64("cart_id", cartID), zap.Error(err))
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, ErrCartEmpty
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.lineTotal())
	}

	/* ---------- INSERT ORDER ---------- */

	o := &Order{UserID: userID, TotalPrice: total}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total_price)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, userID, total).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, nil, fmt.Errorf("insert order: %w", err)
	}

	for i, l := range lines {
		pid := l.productID
		item := &Item{
			ProductID:    &pid,
			ProductName:  l.productName,
			CategoryName: l.categoryName,
			Quantity:     l.quantity,
			Price:        l.lineTotal(),
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, category_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, o.ID, l.productID, l.productName, l.categoryName, l.quantity, item.Price).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.Int64("product_id", l.productID),
				zap.Error(err),
			)
			return nil, nil, fmt.Errorf("insert order item: %w", err)
		}

		o.Items = append(o.Items, item)
	}

	if r.beforeClear != nil {
		if err := r.beforeClear(ctx); err != nil {
			return nil, nil, err
		}
	}

	/* ---------- CLEAR CART ---------- */

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		log.Error("failed to clear cart", zap.Int64("cart_id", cartID), zap.Error(err))
		return nil, nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, nil, err
	}
	committed = true

	log.Info("checkout committed",
		zap.Int64("order_id", o.ID),
		zap.Int("lines", len(lines)),
		zap.String("total", total.StringFixed(2)),
	)

	return o, productIDs(lines), nil
}

func readCartLines(ctx context.Context, tx *sql.Tx, cartID int64) ([]cartLine, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT p.id, p.name, c.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id ASC
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.productID, &l.productName, &l.categoryName, &l.unitPrice, &l.quantity); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total_price, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("list orders failed",
			zap.String("layer", "repository"),
			zap.String("method", "ListByUser"),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, orderID int64) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, total_price, created_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, product_name, category_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	o.Items = []*Item{}
	for rows.Next() {
		var it Item
		var productID sql.NullInt64
		if err := rows.Scan(&it.ID, &productID, &it.ProductName, &it.CategoryName, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		if productID.Valid {
			id := productID.Int64
			it.ProductID = &id
		}
		o.Items = append(o.Items, &it)
	}

	return &o, rows.Err()
}
