package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils"
	"github.com/google/uuid"
)

// OrderRepository reads committed orders and applies the pay/deliver transitions.
// Orders are written only by CheckoutRepository.
type OrderRepository interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderBySessionID(ctx context.Context, sessionID string) (*models.Order, error)
	ListOrders(ctx context.Context, userID *uuid.UUID, page, size int) ([]models.Order, int, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, user_id, items, shipping_address, tax_price, shipping_price, total_order_price,
	payment_method, is_paid, paid_at, is_delivered, delivered_at, payment_session_id, created_at, updated_at`

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}

	var (
		userID      uuid.NullUUID
		itemsJSON   []byte
		addressJSON []byte
		paidAt      sql.NullTime
		deliveredAt sql.NullTime
		sessionID   sql.NullString
	)

	err := row.Scan(&order.ID, &userID, &itemsJSON, &addressJSON, &order.TaxPrice, &order.ShippingPrice, &order.TotalOrderPrice,
		&order.PaymentMethod, &order.IsPaid, &paidAt, &order.IsDelivered, &deliveredAt, &sessionID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if userID.Valid {
		order.UserID = &userID.UUID
	}
	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}
	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}
	if sessionID.Valid {
		order.PaymentSessionID = &sessionID.String
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	return scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *orderRepository) GetOrderBySessionID(ctx context.Context, sessionID string) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_session_id = $1`

	return scanOrder(r.DB.QueryRowContext(dbCtx, query, sessionID))
}

// ListOrders pages through all orders, or only the user's when userID is set.
func (r *orderRepository) ListOrders(ctx context.Context, userID *uuid.UUID, page, size int) ([]models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	owner := nullUUID(userID)

	var total int
	countQuery := `SELECT COUNT(*) FROM orders WHERE ($1::uuid IS NULL OR user_id = $1)`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, owner).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, owner, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, size)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, total, nil
}

// MarkPaid may be re-applied; each call refreshes paid_at.
func (r *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET is_paid = TRUE, paid_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	return scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
}

// MarkDelivered may be re-applied; each call refreshes delivered_at.
func (r *orderRepository) MarkDelivered(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET is_delivered = TRUE, delivered_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	return scanOrder(r.DB.QueryRowContext(dbCtx, query, id))
}
