package service

import (
	"context"
	"errors"

	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	GetOrder(ctx context.Context, id uuid.UUID, requester *models.Claims) (*models.Order, error)
	ListOrders(ctx context.Context, requester *models.Claims, page, size int) ([]models.Order, int, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func orderError(err error, message string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return appErrors.NotFoundError("Order not found").WithError(err)
	}

	return appErrors.DatabaseError(message).WithError(err)
}

// GetOrder hides orders of other users behind a not-found.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID, requester *models.Claims) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, orderError(err, "Failed to fetch order")
	}

	if !requester.IsAdmin() && (order.UserID == nil || requester == nil || *order.UserID != requester.UserID) {
		return nil, appErrors.NotFoundError("Order not found")
	}

	return order, nil
}

// ListOrders returns the requester's own orders; admins see every order.
func (s *orderService) ListOrders(ctx context.Context, requester *models.Claims, page, size int) ([]models.Order, int, error) {
	if requester == nil {
		return nil, 0, appErrors.UnauthorizedError("Authentication required")
	}

	var owner *uuid.UUID
	if !requester.IsAdmin() {
		owner = &requester.UserID
	}

	orders, total, err := s.repo.ListOrders(ctx, owner, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.MarkPaid(ctx, id)
	if err != nil {
		return nil, orderError(err, "Failed to update order")
	}

	return order, nil
}

func (s *orderService) MarkDelivered(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.MarkDelivered(ctx, id)
	if err != nil {
		return nil, orderError(err, "Failed to update order")
	}

	return order, nil
}
