package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService    service.OrderService
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewOrderHandler(orderService service.OrderService, checkoutService service.CheckoutService) *OrderHandler {
	return &OrderHandler{orderService: orderService, checkoutService: checkoutService, validator: validator.New()}
}

// CreateCashOrder godoc
//	@Summary		Place a cash order
//	@Description	Turns the cart into a cash-on-delivery order, adjusts inventory and deletes the cart. Guests may check out; a bearer token attaches the order to the user.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			cartId	path		string						true	"Cart ID"	Format(uuid)
//	@Param			order	body		models.CreateOrderRequest	true	"Shipping address"
//	@Success		201		{object}	models.Order				"Order created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or empty cart"
//	@Failure		404		{object}	response.ErrorResponse		"Cart not found"
//	@Failure		409		{object}	response.ErrorResponse		"Inventory adjustment failed or cart changed"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/orders/{cartId} [post]
func (h *OrderHandler) CreateCashOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, err := utils.ParseID(r, "cartId")
		if err != nil {
			logger.Warn("Invalid cart id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}
		logger = logger.With(slog.String("cartId", cartID.String()))

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		claims, _ := middleware.ClaimsFromContext(r.Context())

		order, err := h.checkoutService.CreateCashOrder(r.Context(), cartID, req.ShippingAddress, claims)
		if err != nil {
			logger.Error("Failed to create cash order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cash order created", slog.String("orderId", order.ID.String()))
		response.Success(w, http.StatusCreated, order)
	}
}

// CheckoutSession godoc
//	@Summary		Open a card checkout session
//	@Description	Creates a hosted payment page for the cart. The order is created when the payment provider reports the session as completed.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			cartId	path		string							true	"Cart ID"	Format(uuid)
//	@Param			body	body		models.CheckoutSessionRequest	false	"Shipping address"
//	@Success		200		{object}	models.CheckoutSessionResponse	"Session id and redirect URL"
//	@Failure		400		{object}	response.ErrorResponse			"Empty cart"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse			"Cart not found"
//	@Failure		500		{object}	response.ErrorResponse			"Payment provider error"
//	@Security		BearerAuth
//	@Router			/orders/checkout-session/{cartId} [get]
func (h *OrderHandler) CheckoutSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout session attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cartID, err := utils.ParseID(r, "cartId")
		if err != nil {
			response.Error(w, err)
			return
		}
		logger = logger.With(slog.String("cartId", cartID.String()))

		var req models.CheckoutSessionRequest
		if !utils.ParseOptionalAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout session input")
			return
		}

		session, err := h.checkoutService.CreateCheckoutSession(r.Context(), cartID, &req, claims)
		if err != nil {
			logger.Error("Failed to create checkout session", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout session created", slog.String("sessionId", session.SessionID))
		response.Success(w, http.StatusOK, session)
	}
}

// GetOrder godoc
//	@Summary		Get an order by ID
//	@Description	Users can read their own orders, admins any order.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"	Format(uuid)
//	@Success		200	{object}	models.Order			"Order"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized order access attempt: missing user claims")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id, claims)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("orderId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//	@Summary		List orders with pagination
//	@Description	Users see their own orders, admins see every order.
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int												false	"Page number (default: 1)"					minimum(1)
//	@Param			pageSize	query		int												false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}	"Orders"
//	@Failure		401			{object}	response.ErrorResponse							"Authentication required"
//	@Failure		500			{object}	response.ErrorResponse							"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized order list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, pageSize := utils.ParsePagination(r)

		orders, total, err := h.orderService.ListOrders(r.Context(), claims, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// MarkPaid godoc
//	@Summary	Mark an order as paid
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		string					true	"Order ID"	Format(uuid)
//	@Success	200	{object}	models.Order			"Updated order"
//	@Failure	403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/orders/{id}/pay [put]
func (h *OrderHandler) MarkPaid() http.HandlerFunc {
	return h.transition("paid", h.orderService.MarkPaid)
}

// MarkDelivered godoc
//	@Summary	Mark an order as delivered
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		string					true	"Order ID"	Format(uuid)
//	@Success	200	{object}	models.Order			"Updated order"
//	@Failure	403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/orders/{id}/deliver [put]
func (h *OrderHandler) MarkDelivered() http.HandlerFunc {
	return h.transition("delivered", h.orderService.MarkDelivered)
}

func (h *OrderHandler) transition(state string, apply func(ctx context.Context, id uuid.UUID) (*models.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := apply(r.Context(), id)
		if err != nil {
			logger.Error("Failed to update order", slog.String("orderId", id.String()), slog.String("state", state), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order updated", slog.String("orderId", id.String()), slog.String("state", state))
		response.Success(w, http.StatusOK, order)
	}
}
