package service_test

import (
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrder(t *testing.T) {
	ownerID := uuid.New()
	order := &models.Order{ID: uuid.New(), UserID: &ownerID}
	guestOrder := &models.Order{ID: uuid.New()}

	testCases := []struct {
		name      string
		order     *models.Order
		requester *models.Claims
		repoErr   error
		expectErr string
	}{
		{name: "Owner reads own order", order: order, requester: &models.Claims{UserID: ownerID, Role: models.RoleUser}},
		{name: "Admin reads any order", order: guestOrder, requester: &models.Claims{UserID: uuid.New(), Role: models.RoleAdmin}},
		{name: "Other user is refused", order: order, requester: &models.Claims{UserID: uuid.New(), Role: models.RoleUser}, expectErr: appErrors.ErrCodeNotFound},
		{name: "Guest order is hidden from users", order: guestOrder, requester: &models.Claims{UserID: ownerID}, expectErr: appErrors.ErrCodeNotFound},
		{name: "Missing order", order: order, requester: &models.Claims{UserID: ownerID}, repoErr: repository.ErrNotFound, expectErr: appErrors.ErrCodeNotFound},
		{name: "Database error", order: order, requester: &models.Claims{UserID: ownerID}, repoErr: errors.New("timeout"), expectErr: appErrors.ErrCodeDatabaseError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := mocks.NewOrderRepository(t)
			svc := service.NewOrderService(repo)

			if tc.repoErr != nil {
				repo.On("GetOrderByID", mock.Anything, tc.order.ID).Return(nil, tc.repoErr).Once()
			} else {
				repo.On("GetOrderByID", mock.Anything, tc.order.ID).Return(tc.order, nil).Once()
			}

			// Act
			got, err := svc.GetOrder(t.Context(), tc.order.ID, tc.requester)

			// Assert
			if tc.expectErr != "" {
				assert.Nil(t, got)
				assertAppError(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.order.ID, got.ID)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	userID := uuid.New()

	t.Run("User sees own orders", func(t *testing.T) {
		// Arrange
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo)
		orders := []models.Order{{ID: uuid.New(), UserID: &userID}}

		repo.On("ListOrders", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool { return id != nil && *id == userID }), 2, 5).
			Return(orders, 6, nil).Once()

		// Act
		got, total, err := svc.ListOrders(t.Context(), &models.Claims{UserID: userID, Role: models.RoleUser}, 2, 5)

		// Assert
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 6, total)
	})

	t.Run("Admin sees all orders", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo)

		repo.On("ListOrders", mock.Anything, (*uuid.UUID)(nil), 1, 10).Return([]models.Order{}, 0, nil).Once()

		_, total, err := svc.ListOrders(t.Context(), &models.Claims{UserID: userID, Role: models.RoleAdmin}, 1, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("Database error", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo)

		repo.On("ListOrders", mock.Anything, mock.Anything, 1, 10).Return(nil, 0, errors.New("timeout")).Once()

		_, _, err := svc.ListOrders(t.Context(), &models.Claims{UserID: userID}, 1, 10)

		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestOrderService_Transitions(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	t.Run("MarkPaid - Success", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo)
		repo.On("MarkPaid", mock.Anything, id).Return(&models.Order{ID: id, IsPaid: true, PaidAt: &now}, nil).Once()

		order, err := svc.MarkPaid(t.Context(), id)

		require.NoError(t, err)
		assert.True(t, order.IsPaid)
	})

	t.Run("MarkDelivered - Success", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo)
		repo.On("MarkDelivered", mock.Anything, id).Return(&models.Order{ID: id, IsDelivered: true, DeliveredAt: &now}, nil).Once()

		order, err := svc.MarkDelivered(t.Context(), id)

		require.NoError(t, err)
		assert.True(t, order.IsDelivered)
	})

	t.Run("MarkDelivered - Not found", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo)
		repo.On("MarkDelivered", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		order, err := svc.MarkDelivered(t.Context(), id)

		assert.Nil(t, order)
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}
