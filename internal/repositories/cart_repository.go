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

type CartRepository interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCart(ctx context.Context, identity models.CartIdentity) (*models.Cart, error)
	GetCartByID(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, id uuid.UUID) error
	ReassignCart(ctx context.Context, cart *models.Cart, userID uuid.UUID) error
	MergeCarts(ctx context.Context, target *models.Cart, guest *models.Cart) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

const cartColumns = `id, user_id, client_origin, items, subtotal, discounted_total, version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCart(row rowScanner) (*models.Cart, error) {
	cart := &models.Cart{}

	var (
		userID          uuid.NullUUID
		clientOrigin    sql.NullString
		itemsJSON       []byte
		discountedTotal sql.NullFloat64
	)

	err := row.Scan(&cart.ID, &userID, &clientOrigin, &itemsJSON, &cart.Subtotal, &discountedTotal, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if userID.Valid {
		cart.UserID = &userID.UUID
	}

	cart.ClientOrigin = clientOrigin.String

	if discountedTotal.Valid {
		cart.DiscountedTotal = &discountedTotal.Float64
	}

	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return cart, nil
}

// marshalItems drops display-only fields before persisting.
func marshalItems(items []models.CartItem) ([]byte, error) {
	stored := make([]models.CartItem, len(items))
	for i, item := range items {
		item.Title = ""
		item.ImageCover = ""
		stored[i] = item
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart items: %w", err)
	}

	return data, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := marshalItems(cart.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (id, user_id, client_origin, items, subtotal, discounted_total, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, NOW(), NOW())
		RETURNING version, created_at, updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, cart.ID, nullUUID(cart.UserID), nullString(cart.ClientOrigin), itemsJSON, cart.Subtotal, nullFloat(cart.DiscountedTotal)).
		Scan(&cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create cart: %w", err)
	}

	return nil
}

func (r *cartRepository) GetCart(ctx context.Context, identity models.CartIdentity) (*models.Cart, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		where string
		arg   any
	)

	switch identity.Kind {
	case models.IdentityUser:
		where, arg = "user_id = $1", identity.UserID
	case models.IdentityGuestToken:
		where, arg = "id = $1 AND user_id IS NULL", identity.CartID
	case models.IdentityGuestOrigin:
		where, arg = "client_origin = $1 AND user_id IS NULL", identity.Origin
	default:
		return nil, fmt.Errorf("unknown cart identity kind %q", identity.Kind)
	}

	query := `SELECT ` + cartColumns + ` FROM carts WHERE ` + where

	return scanCart(r.DB.QueryRowContext(dbCtx, query, arg))
}

func (r *cartRepository) GetCartByID(ctx context.Context, id uuid.UUID) (*models.Cart, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartColumns + ` FROM carts WHERE id = $1`

	return scanCart(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return updateCart(dbCtx, r.DB, cart)
}

// updateCart writes the cart only if nobody else has written it since it was read.
func updateCart(ctx context.Context, q DBTX, cart *models.Cart) error {
	itemsJSON, err := marshalItems(cart.Items)
	if err != nil {
		return err
	}

	query := `
		UPDATE carts
		SET items = $1, subtotal = $2, discounted_total = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
		RETURNING version, updated_at
	`

	err = q.QueryRowContext(ctx, query, itemsJSON, cart.Subtotal, nullFloat(cart.DiscountedTotal), cart.ID, cart.Version).
		Scan(&cart.Version, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to update the cart: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete the cart: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

// deleteCartVersion removes the cart only at the version the caller last saw.
func deleteCartVersion(ctx context.Context, q DBTX, cart *models.Cart) error {
	result, err := q.ExecContext(ctx, `DELETE FROM carts WHERE id = $1 AND version = $2`, cart.ID, cart.Version)
	if err != nil {
		return fmt.Errorf("failed to delete the cart: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return ErrVersionConflict
	}

	return nil
}

func (r *cartRepository) ReassignCart(ctx context.Context, cart *models.Cart, userID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE carts
		SET user_id = $1, client_origin = NULL, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3
		RETURNING version, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, userID, cart.ID, cart.Version).Scan(&cart.Version, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVersionConflict
		}
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to reassign the cart: %w", err)
	}

	cart.UserID = &userID
	cart.ClientOrigin = ""

	return nil
}

// MergeCarts persists the merged target and drops the guest cart in one transaction.
func (r *cartRepository) MergeCarts(ctx context.Context, target *models.Cart, guest *models.Cart) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateCart(dbCtx, tx, target); err != nil {
		return err
	}

	if err := deleteCartVersion(dbCtx, tx, guest); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart merge: %w", err)
	}

	return nil
}
