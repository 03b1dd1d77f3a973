package recommendation

import (
	"context"
	"database/sql"
	"fmt"

	"tyzox-be/internal/apperror"
	"tyzox-be/internal/logger"
	"tyzox-be/internal/product"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	InsertEdges(ctx context.Context, edges []Edge) (int64, error)
	DeleteEdge(ctx context.Context, e Edge) error
	Related(ctx context.Context, productID int64, limit int) ([]*product.Summary, error)
	Neighbors(ctx context.Context, productID int64) ([]int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// InsertEdges writes all edges in one statement and returns how many were new.
func (r *repository) InsertEdges(ctx context.Context, edges []Edge) (int64, error) {
	if len(edges) == 0 {
		return 0, nil
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "InsertEdges"),
		zap.Int("edges", len(edges)),
	)

	as := make([]int64, len(edges))
	bs := make([]int64, len(edges))
	for i, e := range edges {
		as[i], bs[i] = e.A, e.B
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO product_relations (product_a, product_b)
		SELECT * FROM UNNEST($1::bigint[], $2::bigint[])
		ON CONFLICT DO NOTHING
	`, pq.Array(as), pq.Array(bs))
	if err != nil {
		if apperror.PgCode(err) == apperror.PgForeignKeyViolation {
			log.Warn("edge references missing product", zap.Error(err))
			return 0, apperror.Wrap(ErrProductNotFound, err)
		}
		log.Error("insert edges failed", zap.Error(err))
		return 0, fmt.Errorf("insert edges: %w", err)
	}

	added, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Debug("edges inserted", zap.Int64("added", added))
	return added, nil
}

func (r *repository) DeleteEdge(ctx context.Context, e Edge) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM product_relations
		WHERE product_a = $1 AND product_b = $2
	`, e.A, e.B)
	if err != nil {
		return fmt.Errorf("delete edge: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEdgeNotFound
	}
	return nil
}

// Related returns available neighbours of productID, matching either column.
func (r *repository) Related(ctx context.Context, productID int64, limit int) ([]*product.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.slug, p.price, p.image_url, c.slug
		FROM product_relations pr
		JOIN products p
		  ON p.id = CASE WHEN pr.product_a = $1 THEN pr.product_b ELSE pr.product_a END
		JOIN categories c ON c.id = p.category_id
		WHERE (pr.product_a = $1 OR pr.product_b = $1)
		  AND p.is_available = TRUE
		ORDER BY p.name ASC
		LIMIT $2
	`, productID, limit)
	if err != nil {
		logger.FromCtx(ctx).Error("related query failed",
			zap.String("layer", "repository"),
			zap.String("method", "Related"),
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
		return nil, err
	}
	defer rows.Close()

	related := []*product.Summary{}
	for rows.Next() {
		var s product.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Price, &s.ImageURL, &s.CategorySlug); err != nil {
			return nil, err
		}
		related = append(related, &s)
	}

	return related, rows.Err()
}

// Neighbors returns every related product id regardless of availability.
func (r *repository) Neighbors(ctx context.Context, productID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CASE WHEN product_a = $1 THEN product_b ELSE product_a END
		FROM product_relations
		WHERE product_a = $1 OR product_b = $1
		ORDER BY 1
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
