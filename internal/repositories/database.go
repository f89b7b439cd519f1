package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/config"
	"github.com/lib/pq"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrVersionConflict     = errors.New("record was modified concurrently")
	ErrDuplicate           = errors.New("record already exists")
	ErrInventoryAdjustment = errors.New("inventory adjustment incomplete")
)

const uniqueViolation = "23505"

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repository struct {
	DB           *sql.DB
	User         UserRepository
	Product      ProductRepository
	Coupon       CouponRepository
	Cart         CartRepository
	Order        OrderRepository
	Inventory    InventoryRepository
	Checkout     CheckoutRepository
	Payment      PaymentRepository
	Notification NotificationRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewRepository(db), nil
}

// NewRepository wires every repository onto an open pool.
func NewRepository(db *sql.DB) *Repository {
	inventory := NewInventoryRepo(db)

	return &Repository{
		DB:           db,
		User:         NewUserRepo(db),
		Product:      NewProductRepo(db),
		Coupon:       NewCouponRepo(db),
		Cart:         NewCartRepo(db),
		Order:        NewOrderRepo(db),
		Inventory:    inventory,
		Checkout:     NewCheckoutRepo(db, inventory),
		Payment:      NewPaymentRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

func (p *Repository) Close() error {

	return p.DB.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
