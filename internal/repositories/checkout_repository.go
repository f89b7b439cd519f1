package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils"
)

type CommitOptions struct {
	// RecordRanking adds the order's quantities to the best-seller tally.
	RecordRanking bool
}

// CheckoutRepository turns a cart into an order in a single transaction:
// order insert, inventory adjustment, optional ranking tally and cart removal
// either all commit or none do.
type CheckoutRepository interface {
	CommitOrder(ctx context.Context, order *models.Order, cart *models.Cart, opts CommitOptions) error
}

type checkoutRepository struct {
	DB        *sql.DB
	inventory InventoryRepository
}

func NewCheckoutRepo(db *sql.DB, inventory InventoryRepository) CheckoutRepository {
	return &checkoutRepository{DB: db, inventory: inventory}
}

func (r *checkoutRepository) CommitOrder(ctx context.Context, order *models.Order, cart *models.Cart, opts CommitOptions) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertOrder(dbCtx, tx, order); err != nil {
		return err
	}

	adjustments := order.Adjustments()

	if err := r.inventory.ApplyPurchase(dbCtx, tx, adjustments); err != nil {
		return err
	}

	if opts.RecordRanking {
		if err := r.inventory.IncrementOrderCounts(dbCtx, tx, adjustments); err != nil {
			return err
		}
	}

	if err := deleteCartVersion(dbCtx, tx, cart); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// insertOrder returns ErrDuplicate when an order for the same payment session already exists.
func insertOrder(ctx context.Context, q DBTX, order *models.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	var sessionID sql.NullString
	if order.PaymentSessionID != nil {
		sessionID = nullString(*order.PaymentSessionID)
	}

	query := `
		INSERT INTO orders (id, user_id, items, shipping_address, tax_price, shipping_price, total_order_price,
			payment_method, is_paid, paid_at, is_delivered, payment_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, $11, NOW(), NOW())
		ON CONFLICT (payment_session_id) DO NOTHING
		RETURNING created_at, updated_at
	`

	var paidAt sql.NullTime
	if order.PaidAt != nil {
		paidAt = sql.NullTime{Time: *order.PaidAt, Valid: true}
	}

	err = q.QueryRowContext(ctx, query, order.ID, nullUUID(order.UserID), itemsJSON, addressJSON, order.TaxPrice, order.ShippingPrice,
		order.TotalOrderPrice, order.PaymentMethod, order.IsPaid, paidAt, sessionID).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}
