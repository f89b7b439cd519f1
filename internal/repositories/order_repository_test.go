package repository_test

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{
	"id", "user_id", "items", "shipping_address", "tax_price", "shipping_price", "total_order_price",
	"payment_method", "is_paid", "paid_at", "is_delivered", "delivered_at", "payment_session_id", "created_at", "updated_at",
}

func setupOrderRepoTest(t *testing.T) (repository.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewOrderRepo(db), mock
}

func orderRow(t *testing.T, rows *sqlmock.Rows, id, productID uuid.UUID, userID any, paidAt any, sessionID any) *sqlmock.Rows {
	t.Helper()

	items, err := json.Marshal([]models.OrderItem{{ProductID: productID, Quantity: 2, Price: 12.5}})
	require.NoError(t, err)
	address, err := json.Marshal(models.ShippingAddress{Details: "12 Nile St", Phone: "0100", City: "Cairo"})
	require.NoError(t, err)

	isPaid := paidAt != nil
	now := time.Now()

	return rows.AddRow(id.String(), userID, items, address, 0.0, 0.0, 25.0, "cash", isPaid, paidAt, false, nil, sessionID, now, now)
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	selectSQL := regexp.QuoteMeta("FROM orders WHERE id = $1")

	t.Run("Success - Guest order", func(t *testing.T) {
		// Arrange
		orderID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(selectSQL).
			WithArgs(orderID).
			WillReturnRows(orderRow(t, sqlmock.NewRows(orderRowColumns), orderID, productID, nil, nil, nil))

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Nil(t, order.UserID)
		assert.Nil(t, order.PaidAt)
		assert.Nil(t, order.PaymentSessionID)
		assert.Equal(t, models.PaymentMethodCash, order.PaymentMethod)
		require.Len(t, order.Items, 1)
		assert.Equal(t, productID, order.Items[0].ProductID)
		assert.Equal(t, "Cairo", order.ShippingAddress.City)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		orderID := uuid.New()
		mock.ExpectQuery(selectSQL).WithArgs(orderID).WillReturnError(sql.ErrNoRows)

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, order)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderBySessionID(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	// Arrange
	orderID := uuid.New()
	userID := uuid.New()
	paidAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE payment_session_id = $1")).
		WithArgs("cs_test_1").
		WillReturnRows(orderRow(t, sqlmock.NewRows(orderRowColumns), orderID, uuid.New(), userID.String(), paidAt, "cs_test_1"))

	// Act
	order, err := repo.GetOrderBySessionID(ctx, "cs_test_1")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, order.UserID)
	assert.Equal(t, userID, *order.UserID)
	require.NotNil(t, order.PaymentSessionID)
	assert.Equal(t, "cs_test_1", *order.PaymentSessionID)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListOrders(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	countSQL := regexp.QuoteMeta("SELECT COUNT(*) FROM orders WHERE ($1::uuid IS NULL OR user_id = $1)")
	listSQL := regexp.QuoteMeta("FROM orders WHERE ($1::uuid IS NULL OR user_id = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3")

	t.Run("Success - Scoped to user", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		owner := uuid.NullUUID{UUID: userID, Valid: true}

		mock.ExpectQuery(countSQL).
			WithArgs(owner).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		rows := sqlmock.NewRows(orderRowColumns)
		orderRow(t, rows, uuid.New(), uuid.New(), userID.String(), nil, nil)
		orderRow(t, rows, uuid.New(), uuid.New(), userID.String(), nil, nil)

		mock.ExpectQuery(listSQL).
			WithArgs(owner, 10, 10).
			WillReturnRows(rows)

		// Act
		orders, total, err := repo.ListOrders(ctx, &userID, 2, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		assert.Len(t, orders, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - All orders", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(countSQL).
			WithArgs(uuid.NullUUID{}).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(listSQL).
			WithArgs(uuid.NullUUID{}, 10, 0).
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		// Act
		orders, total, err := repo.ListOrders(ctx, nil, 1, 10)

		// Assert
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Count error", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(countSQL).WillReturnError(errors.New("connection reset"))

		// Act
		orders, _, err := repo.ListOrders(ctx, nil, 1, 10)

		// Assert
		require.ErrorContains(t, err, "failed to count orders")
		assert.Nil(t, orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_StatusTransitions(t *testing.T) {
	repo, mock := setupOrderRepoTest(t)
	ctx := t.Context()

	t.Run("MarkPaid", func(t *testing.T) {
		// Arrange
		orderID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders SET is_paid = TRUE, paid_at = NOW()")).
			WithArgs(orderID).
			WillReturnRows(orderRow(t, sqlmock.NewRows(orderRowColumns), orderID, uuid.New(), nil, time.Now(), nil))

		// Act
		order, err := repo.MarkPaid(ctx, orderID)

		// Assert
		require.NoError(t, err)
		assert.True(t, order.IsPaid)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MarkDelivered - Not found", func(t *testing.T) {
		// Arrange
		orderID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders SET is_delivered = TRUE, delivered_at = NOW()")).
			WithArgs(orderID).
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		// Act
		order, err := repo.MarkDelivered(ctx, orderID)

		// Assert
		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, order)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
