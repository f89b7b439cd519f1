package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "title", "price", "image_cover", "quantity", "sold", "created_at", "updated_at"}

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProductRepo(db), mock
}

func TestProductRepository_GetProductByID(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	selectSQL := regexp.QuoteMeta("FROM products WHERE id = $1")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		productID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(selectSQL).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(productID.String(), "Desk Lamp", 19.99, "lamp.png", 7, 3, now, now))

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Desk Lamp", product.Title)
		assert.InDelta(t, 19.99, product.Price, 0.0001)
		assert.Equal(t, int64(7), product.Quantity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		productID := uuid.New()
		mock.ExpectQuery(selectSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, product)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_GetProductsByIDs(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	selectSQL := regexp.QuoteMeta("FROM products WHERE id = ANY($1::uuid[])")

	t.Run("Success - Missing ids are absent from the map", func(t *testing.T) {
		// Arrange
		found, missing := uuid.New(), uuid.New()
		now := time.Now()

		mock.ExpectQuery(selectSQL).
			WithArgs(pq.Array([]string{found.String(), missing.String()})).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(found.String(), "Notebook", 4.5, "notebook.png", 20, 0, now, now))

		// Act
		products, err := repo.GetProductsByIDs(ctx, []uuid.UUID{found, missing})

		// Assert
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Contains(t, products, found)
		assert.NotContains(t, products, missing)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty input skips the query", func(t *testing.T) {
		// Act
		products, err := repo.GetProductsByIDs(ctx, nil)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(selectSQL).WillReturnError(errors.New("connection refused"))

		// Act
		products, err := repo.GetProductsByIDs(ctx, []uuid.UUID{uuid.New()})

		// Assert
		require.ErrorContains(t, err, "failed to query products")
		assert.Nil(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
