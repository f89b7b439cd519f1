package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/services/mocks"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderHandler(t *testing.T) (*handlers.OrderHandler, *mocks.OrderService, *mocks.CheckoutService) {
	t.Helper()

	orders := mocks.NewOrderService(t)
	checkout := mocks.NewCheckoutService(t)

	return handlers.NewOrderHandler(orders, checkout), orders, checkout
}

var testAddress = models.ShippingAddress{
	Details:    "12 Nile St",
	Phone:      "01000000000",
	City:       "Cairo",
	PostalCode: "11511",
	Email:      "buyer@example.com",
}

func TestOrderHandler_CreateCashOrder(t *testing.T) {
	cartID := uuid.New()
	pathParams := map[string]string{"cartId": cartID.String()}

	t.Run("Success - Guest checkout", func(t *testing.T) {
		// Arrange
		handler, _, checkout := newOrderHandler(t)
		expected := &models.Order{ID: uuid.New(), PaymentMethod: models.PaymentMethodCash, TotalOrderPrice: 35, ShippingAddress: testAddress}

		checkout.On("CreateCashOrder", mock.Anything, cartID, testAddress, (*models.Claims)(nil)).Return(expected, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/orders/"+cartID.String(), jsonBody(t, models.CreateOrderRequest{ShippingAddress: testAddress}), pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateCashOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		got := decodeData[models.Order](t, rr)
		assert.Equal(t, expected.ID, got.ID)
		assert.Equal(t, models.PaymentMethodCash, got.PaymentMethod)
		assert.Nil(t, got.UserID)
	})

	t.Run("Success - Authenticated user owns the order", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)
		userID := uuid.New()

		checkout.On("CreateCashOrder", mock.Anything, cartID, testAddress, mock.MatchedBy(func(c *models.Claims) bool {
			return c != nil && c.UserID == userID
		})).Return(&models.Order{ID: uuid.New(), UserID: &userID}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/orders/"+cartID.String(), jsonBody(t, models.CreateOrderRequest{ShippingAddress: testAddress}), userID, pathParams)
		rr := httptest.NewRecorder()

		handler.CreateCashOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Missing shipping fields", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)

		body := jsonBody(t, map[string]any{"shipping_address": map[string]string{"city": "Cairo"}})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/orders/"+cartID.String(), body, pathParams)
		rr := httptest.NewRecorder()

		handler.CreateCashOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		checkout.AssertNotCalled(t, "CreateCashOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)

		checkout.On("CreateCashOrder", mock.Anything, cartID, testAddress, mock.Anything).
			Return(nil, appErrors.EmptyCartError("Cart has no items")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/orders/"+cartID.String(), jsonBody(t, models.CreateOrderRequest{ShippingAddress: testAddress}), pathParams)
		rr := httptest.NewRecorder()

		handler.CreateCashOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, decodeError(t, rr).Code)
	})

	t.Run("Failure - Inventory adjustment", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)

		checkout.On("CreateCashOrder", mock.Anything, cartID, testAddress, mock.Anything).
			Return(nil, appErrors.InventoryAdjustmentError("A product in the cart no longer exists")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/orders/"+cartID.String(), jsonBody(t, models.CreateOrderRequest{ShippingAddress: testAddress}), pathParams)
		rr := httptest.NewRecorder()

		handler.CreateCashOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInventoryAdjustment, decodeError(t, rr).Code)
	})
}

func TestOrderHandler_CheckoutSession(t *testing.T) {
	cartID := uuid.New()
	userID := uuid.New()
	pathParams := map[string]string{"cartId": cartID.String()}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		handler, _, checkout := newOrderHandler(t)
		expected := &models.CheckoutSessionResponse{SessionID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"}

		checkout.On("CreateCheckoutSession", mock.Anything, cartID, mock.MatchedBy(func(req *models.CheckoutSessionRequest) bool {
			return req.ShippingAddress != nil && req.ShippingAddress.City == "Cairo"
		}), mock.Anything).Return(expected, nil).Once()

		body := jsonBody(t, models.CheckoutSessionRequest{ShippingAddress: &testAddress})
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/checkout-session/"+cartID.String(), body, userID, pathParams)
		rr := httptest.NewRecorder()

		// Act
		handler.CheckoutSession().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, *expected, decodeData[models.CheckoutSessionResponse](t, rr))
	})

	t.Run("Success - No body", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)

		checkout.On("CreateCheckoutSession", mock.Anything, cartID, &models.CheckoutSessionRequest{}, mock.Anything).
			Return(&models.CheckoutSessionResponse{SessionID: "cs_test_456"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/checkout-session/"+cartID.String(), nil, userID, pathParams)
		rr := httptest.NewRecorder()

		handler.CheckoutSession().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/orders/checkout-session/"+cartID.String(), nil, pathParams)
		rr := httptest.NewRecorder()

		handler.CheckoutSession().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		checkout.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Gateway error", func(t *testing.T) {
		handler, _, checkout := newOrderHandler(t)

		checkout.On("CreateCheckoutSession", mock.Anything, cartID, mock.Anything, mock.Anything).
			Return(nil, appErrors.ThirdPartyError("Failed to create checkout session")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/checkout-session/"+cartID.String(), nil, userID, pathParams)
		rr := httptest.NewRecorder()

		handler.CheckoutSession().ServeHTTP(rr, req)

		assert.Equal(t, appErrors.ErrCodeThirdPartyError, decodeError(t, rr).Code)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	pathParams := map[string]string{"id": orderID.String()}

	t.Run("Success", func(t *testing.T) {
		handler, orders, _ := newOrderHandler(t)

		orders.On("GetOrder", mock.Anything, orderID, mock.MatchedBy(func(c *models.Claims) bool { return c.UserID == userID })).
			Return(&models.Order{ID: orderID, UserID: &userID}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/"+orderID.String(), nil, userID, pathParams)
		rr := httptest.NewRecorder()

		handler.GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, orderID, decodeData[models.Order](t, rr).ID)
	})

	t.Run("Failure - Someone else's order", func(t *testing.T) {
		handler, orders, _ := newOrderHandler(t)

		orders.On("GetOrder", mock.Anything, orderID, mock.Anything).Return(nil, appErrors.NotFoundError("Order not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/"+orderID.String(), nil, uuid.New(), pathParams)
		rr := httptest.NewRecorder()

		handler.GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Invalid id", func(t *testing.T) {
		handler, orders, _ := newOrderHandler(t)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders/xyz", nil, userID, map[string]string{"id": "xyz"})
		rr := httptest.NewRecorder()

		handler.GetOrder().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		orders.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

type orderPage struct {
	Data     []models.Order `json:"data"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

func TestOrderHandler_ListOrders(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Pagination", func(t *testing.T) {
		// Arrange
		handler, orders, _ := newOrderHandler(t)
		list := []models.Order{{ID: uuid.New(), UserID: &userID}, {ID: uuid.New(), UserID: &userID}}

		orders.On("ListOrders", mock.Anything, mock.Anything, 2, 5).Return(list, 7, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/orders?page=2&pageSize=5", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListOrders().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)
		page := decodeData[orderPage](t, rr)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 7, page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 5, page.PageSize)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		handler, orders, _ := newOrderHandler(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/orders", nil, nil)
		rr := httptest.NewRecorder()

		handler.ListOrders().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		orders.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderHandler_Transitions(t *testing.T) {
	orderID := uuid.New()
	admin := &models.Claims{UserID: uuid.New(), Role: models.RoleAdmin}
	pathParams := map[string]string{"id": orderID.String()}
	now := time.Now().UTC()

	t.Run("MarkPaid", func(t *testing.T) {
		handler, orders, _ := newOrderHandler(t)

		orders.On("MarkPaid", mock.Anything, orderID).Return(&models.Order{ID: orderID, IsPaid: true, PaidAt: &now}, nil).Once()

		req := testutils.CreateTestRequestWithClaims(http.MethodPut, "/orders/"+orderID.String()+"/pay", nil, admin, pathParams)
		rr := httptest.NewRecorder()

		handler.MarkPaid().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeData[models.Order](t, rr).IsPaid)
	})

	t.Run("MarkDelivered - Not found", func(t *testing.T) {
		handler, orders, _ := newOrderHandler(t)

		orders.On("MarkDelivered", mock.Anything, orderID).Return(nil, appErrors.NotFoundError("Order not found")).Once()

		req := testutils.CreateTestRequestWithClaims(http.MethodPut, "/orders/"+orderID.String()+"/deliver", nil, admin, pathParams)
		rr := httptest.NewRecorder()

		handler.MarkDelivered().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
