package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils"
	"github.com/lib/pq"
)

// InventoryRepository owns products.quantity, products.sold and the product_orders ranking tally.
// Writes take a DBTX so they can join the checkout transaction.
type InventoryRepository interface {
	ApplyPurchase(ctx context.Context, q DBTX, adjustments []models.InventoryAdjustment) error
	IncrementOrderCounts(ctx context.Context, q DBTX, adjustments []models.InventoryAdjustment) error
	TopOrdered(ctx context.Context, limit int) ([]models.ProductOrderCount, error)
}

type inventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepo(db *sql.DB) InventoryRepository {
	return &inventoryRepository{DB: db}
}

func adjustmentArrays(adjustments []models.InventoryAdjustment) (any, any) {
	ids := make([]string, len(adjustments))
	quantities := make([]int64, len(adjustments))

	for i, adj := range adjustments {
		ids[i] = adj.ProductID.String()
		quantities[i] = int64(adj.Quantity)
	}

	return pq.Array(ids), pq.Array(quantities)
}

// ApplyPurchase decrements stock and increments sold for every product in one statement.
// Adjustments must hold one entry per product. Stock is allowed to go negative.
func (r *inventoryRepository) ApplyPurchase(ctx context.Context, q DBTX, adjustments []models.InventoryAdjustment) error {

	if len(adjustments) == 0 {
		return nil
	}

	ids, quantities := adjustmentArrays(adjustments)

	query := `
		UPDATE products AS p
		SET quantity = p.quantity - v.qty, sold = p.sold + v.qty, updated_at = NOW()
		FROM unnest($1::uuid[], $2::bigint[]) AS v(id, qty)
		WHERE p.id = v.id
	`

	result, err := q.ExecContext(ctx, query, ids, quantities)
	if err != nil {
		return fmt.Errorf("failed to adjust inventory: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get adjusted rows: %w", err)
	}

	if updated != int64(len(adjustments)) {
		return fmt.Errorf("%w: adjusted %d of %d products", ErrInventoryAdjustment, updated, len(adjustments))
	}

	return nil
}

func (r *inventoryRepository) IncrementOrderCounts(ctx context.Context, q DBTX, adjustments []models.InventoryAdjustment) error {

	if len(adjustments) == 0 {
		return nil
	}

	ids, quantities := adjustmentArrays(adjustments)

	query := `
		INSERT INTO product_orders (product_id, order_count, last_updated)
		SELECT v.id, v.qty, NOW() FROM unnest($1::uuid[], $2::bigint[]) AS v(id, qty)
		ON CONFLICT (product_id) DO UPDATE
		SET order_count = product_orders.order_count + EXCLUDED.order_count, last_updated = NOW()
	`

	if _, err := q.ExecContext(ctx, query, ids, quantities); err != nil {
		return fmt.Errorf("failed to increment order counts: %w", err)
	}

	return nil
}

func (r *inventoryRepository) TopOrdered(ctx context.Context, limit int) ([]models.ProductOrderCount, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT po.product_id, p.title, p.image_cover, po.order_count, po.last_updated
		FROM product_orders po
		JOIN products p ON p.id = po.product_id
		ORDER BY po.order_count DESC, po.last_updated DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(dbCtx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking: %w", err)
	}
	defer rows.Close()

	ranking := make([]models.ProductOrderCount, 0, limit)
	for rows.Next() {
		var entry models.ProductOrderCount
		if err := rows.Scan(&entry.ProductID, &entry.Title, &entry.ImageCover, &entry.OrderCount, &entry.LastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan ranking: %w", err)
		}
		ranking = append(ranking, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranking: %w", err)
	}

	return ranking, nil
}
