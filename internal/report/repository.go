package report

import (
	"context"
	"database/sql"

	"tyzox-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	SalesByProduct(ctx context.Context) ([]*SalesRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// SalesByProduct groups order lines by product. Live product and category
// names win; deleted products fall back to the names captured at checkout.
func (r *repository) SalesByProduct(ctx context.Context) ([]*SalesRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SalesByProduct"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.product_id,
			COALESCE(p.name, oi.product_name) AS product_name,
			COALESCE(c.name, oi.category_name) AS category_name,
			SUM(oi.quantity) AS total_sold,
			SUM(oi.price) AS total_revenue
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		GROUP BY oi.product_id,
			COALESCE(p.name, oi.product_name),
			COALESCE(c.name, oi.category_name)
		ORDER BY total_sold DESC, product_name ASC
	`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	report := []*SalesRow{}
	for rows.Next() {
		var row SalesRow
		var productID sql.NullInt64
		if err := rows.Scan(&productID, &row.ProductName, &row.CategoryName, &row.TotalSold, &row.TotalRevenue); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		if productID.Valid {
			id := productID.Int64
			row.ProductID = &id
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("sales report built", zap.Int("rows", len(report)))
	return report, nil
}
