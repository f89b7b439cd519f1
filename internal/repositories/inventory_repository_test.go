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

func setupInventoryRepoTest(t *testing.T) (repository.InventoryRepository, sqlmock.Sqlmock, repository.DBTX) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewInventoryRepo(db), mock, db
}

func TestInventoryRepository_ApplyPurchase(t *testing.T) {
	repo, mock, db := setupInventoryRepoTest(t)
	ctx := t.Context()

	productID := uuid.New()
	adjustments := []models.InventoryAdjustment{{ProductID: productID, Quantity: 4}}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(applyPurchaseSQL).
			WithArgs(pq.Array([]string{productID.String()}), pq.Array([]int64{4})).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.ApplyPurchase(ctx, db, adjustments)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Nothing to adjust", func(t *testing.T) {
		// Act
		err := repo.ApplyPurchase(ctx, db, nil)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Product missing", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(applyPurchaseSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.ApplyPurchase(ctx, db, adjustments)

		// Assert
		require.ErrorIs(t, err, repository.ErrInventoryAdjustment)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(applyPurchaseSQL).WillReturnError(errors.New("deadlock detected"))

		// Act
		err := repo.ApplyPurchase(ctx, db, adjustments)

		// Assert
		require.ErrorContains(t, err, "failed to adjust inventory")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInventoryRepository_IncrementOrderCounts(t *testing.T) {
	repo, mock, db := setupInventoryRepoTest(t)
	ctx := t.Context()

	// Arrange
	productID := uuid.New()
	mock.ExpectExec(orderCountsSQL).
		WithArgs(pq.Array([]string{productID.String()}), pq.Array([]int64{3})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Act
	err := repo.IncrementOrderCounts(ctx, db, []models.InventoryAdjustment{{ProductID: productID, Quantity: 3}})

	// Assert
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRepository_TopOrdered(t *testing.T) {
	repo, mock, _ := setupInventoryRepoTest(t)
	ctx := t.Context()

	topSQL := regexp.QuoteMeta("FROM product_orders po JOIN products p ON p.id = po.product_id ORDER BY po.order_count DESC")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		first, second := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(topSQL).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "title", "image_cover", "order_count", "last_updated"}).
				AddRow(first.String(), "Desk Lamp", "lamp.png", 9, now).
				AddRow(second.String(), "Notebook", "notebook.png", 4, now))

		// Act
		ranking, err := repo.TopOrdered(ctx, 5)

		// Assert
		require.NoError(t, err)
		require.Len(t, ranking, 2)
		assert.Equal(t, first, ranking[0].ProductID)
		assert.EqualValues(t, 9, ranking[0].OrderCount)
		assert.Equal(t, "Notebook", ranking[1].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query error", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(topSQL).WillReturnError(errors.New("relation does not exist"))

		// Act
		ranking, err := repo.TopOrdered(ctx, 5)

		// Assert
		require.ErrorContains(t, err, "failed to query ranking")
		assert.Nil(t, ranking)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
