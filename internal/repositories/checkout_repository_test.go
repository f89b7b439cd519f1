package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	insertOrderSQL    = regexp.QuoteMeta("INSERT INTO orders (id, user_id, items, shipping_address")
	applyPurchaseSQL  = regexp.QuoteMeta("UPDATE products AS p SET quantity = p.quantity - v.qty, sold = p.sold + v.qty")
	orderCountsSQL    = regexp.QuoteMeta("INSERT INTO product_orders (product_id, order_count, last_updated)")
	deleteCartVersion = regexp.QuoteMeta("DELETE FROM carts WHERE id = $1 AND version = $2")
)

func setupCheckoutRepoTest(t *testing.T) (repository.CheckoutRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCheckoutRepo(db, repository.NewInventoryRepo(db)), mock
}

// sortedIDs mirrors the product ordering used by models.AggregateAdjustments.
func sortedIDs(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}

func TestCheckoutRepository_CommitOrder(t *testing.T) {
	ctx := t.Context()

	productA := uuid.New()
	productB := uuid.New()
	first, second := sortedIDs(productA, productB)

	quantities := map[uuid.UUID]int64{productA: 2, productB: 1}
	expectedIDs := pq.Array([]string{first.String(), second.String()})
	expectedQuantities := pq.Array([]int64{quantities[first], quantities[second]})

	newOrder := func() *models.Order {
		return &models.Order{
			ID: uuid.New(),
			Items: []models.OrderItem{
				{ProductID: productA, Quantity: 2, Price: 10},
				{ProductID: productB, Quantity: 1, Price: 5},
			},
			ShippingAddress: models.ShippingAddress{Details: "12 Nile St", Phone: "0100", City: "Cairo"},
			TotalOrderPrice: 25,
			PaymentMethod:   models.PaymentMethodCash,
		}
	}
	cart := &models.Cart{ID: uuid.New(), Version: 3}

	t.Run("Success - Cash order with ranking", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		order := newOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(applyPurchaseSQL).
			WithArgs(expectedIDs, expectedQuantities).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(orderCountsSQL).
			WithArgs(expectedIDs, expectedQuantities).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(deleteCartVersion).
			WithArgs(cart.ID, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CommitOrder(ctx, order, cart, repository.CommitOptions{RecordRanking: true})

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, order.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Card order skips ranking", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		order := newOrder()
		sessionID := "cs_test_123"
		order.PaymentSessionID = &sessionID
		order.PaymentMethod = models.PaymentMethodCard

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(applyPurchaseSQL).
			WithArgs(expectedIDs, expectedQuantities).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(deleteCartVersion).
			WithArgs(cart.ID, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CommitOrder(ctx, order, cart, repository.CommitOptions{})

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - One product in two colors adjusts a single row", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		order := newOrder()
		order.Items = []models.OrderItem{
			{ProductID: productA, Quantity: 2, Color: "red", Price: 10},
			{ProductID: productA, Quantity: 3, Color: "blue", Price: 10},
		}
		singleID := pq.Array([]string{productA.String()})
		summed := pq.Array([]int64{5})

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(applyPurchaseSQL).
			WithArgs(singleID, summed).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(orderCountsSQL).
			WithArgs(singleID, summed).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(deleteCartVersion).
			WithArgs(cart.ID, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CommitOrder(ctx, order, cart, repository.CommitOptions{RecordRanking: true})

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Duplicate payment session", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))
		mock.ExpectRollback()

		// Act
		err := repo.CommitOrder(ctx, newOrder(), cart, repository.CommitOptions{})

		// Assert
		require.ErrorIs(t, err, repository.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Missing product rolls back everything", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(applyPurchaseSQL).
			WithArgs(expectedIDs, expectedQuantities).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		// Act
		err := repo.CommitOrder(ctx, newOrder(), cart, repository.CommitOptions{RecordRanking: true})

		// Assert
		require.ErrorIs(t, err, repository.ErrInventoryAdjustment)
		assert.ErrorContains(t, err, "adjusted 1 of 2 products")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Cart changed during checkout", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(applyPurchaseSQL).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(orderCountsSQL).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(deleteCartVersion).
			WithArgs(cart.ID, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		// Act
		err := repo.CommitOrder(ctx, newOrder(), cart, repository.CommitOptions{RecordRanking: true})

		// Assert
		require.ErrorIs(t, err, repository.ErrVersionConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Begin error", func(t *testing.T) {
		// Arrange
		repo, mock := setupCheckoutRepoTest(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		// Act
		err := repo.CommitOrder(ctx, newOrder(), cart, repository.CommitOptions{})

		// Assert
		require.ErrorContains(t, err, "failed to begin transaction")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
