package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/config"
	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/events"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/aaravmahajanofficial/eshop-checkout/pkg/stripe"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const webhookClaimPrefix = "webhook:"

// Webhook outcomes reported to metrics.
const (
	webhookProcessed = "processed"
	webhookIgnored   = "ignored"
	webhookDuplicate = "duplicate"
	webhookRejected  = "rejected"
	webhookFailed    = "failed"
)

// Metadata keys carrying the shipping address through the gateway session.
const (
	metaDetails    = "details"
	metaPhone      = "phone"
	metaCity       = "city"
	metaPostalCode = "postal_code"
	metaEmail      = "email"
)

type CheckoutService interface {
	CreateCashOrder(ctx context.Context, cartID uuid.UUID, address models.ShippingAddress, requester *models.Claims) (*models.Order, error)
	CreateCheckoutSession(ctx context.Context, cartID uuid.UUID, req *models.CheckoutSessionRequest, requester *models.Claims) (*models.CheckoutSessionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// CheckoutDeps groups the collaborators of the checkout flows.
type CheckoutDeps struct {
	Carts         repository.CartRepository
	Orders        repository.OrderRepository
	Users         repository.UserRepository
	Payments      repository.PaymentRepository
	Checkout      repository.CheckoutRepository
	Claims        repository.ClaimRepository
	Gateway       stripe.Client
	Notifications NotificationService
	Events        events.Publisher
}

type checkoutService struct {
	CheckoutDeps
	pricing    config.Checkout
	gateway    config.Stripe
	textPolicy *bluemonday.Policy
}

func NewCheckoutService(deps CheckoutDeps, pricing config.Checkout, gateway config.Stripe) CheckoutService {
	return &checkoutService{
		CheckoutDeps: deps,
		pricing:      pricing,
		gateway:      gateway,
		textPolicy:   bluemonday.StrictPolicy(),
	}
}

func requesterID(requester *models.Claims) *uuid.UUID {
	if requester == nil {
		return nil
	}

	id := requester.UserID
	return &id
}

// sanitizeAddress strips markup from free-text address fields; they end up in emails.
func (s *checkoutService) sanitizeAddress(address models.ShippingAddress) models.ShippingAddress {
	address.Details = s.stripMarkup(address.Details)
	address.City = s.stripMarkup(address.City)
	address.Phone = s.stripMarkup(address.Phone)
	address.PostalCode = s.stripMarkup(address.PostalCode)

	return address
}

// stripMarkup keeps the text content only; escaping is left to the renderer.
func (s *checkoutService) stripMarkup(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.textPolicy.Sanitize(value)))
}

func (s *checkoutService) loadCheckoutCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Carts.GetCartByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, cartNotFound(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, appErrors.EmptyCartError("Cart has no items")
	}

	return cart, nil
}

func orderItems(cart *models.Cart) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Price:     item.UnitPrice,
		})
	}

	return items
}

func (s *checkoutService) newOrder(cart *models.Cart, address models.ShippingAddress, method models.PaymentMethod, owner *uuid.UUID) *models.Order {
	return &models.Order{
		ID:              uuid.New(),
		UserID:          owner,
		Items:           orderItems(cart),
		ShippingAddress: s.sanitizeAddress(address),
		TaxPrice:        s.pricing.TaxPrice,
		ShippingPrice:   s.pricing.ShippingPrice,
		TotalOrderPrice: OrderTotal(cart, s.pricing.TaxPrice, s.pricing.ShippingPrice),
		PaymentMethod:   method,
	}
}

func commitError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInventoryAdjustment):
		return appErrors.InventoryAdjustmentError("Some products in the cart are no longer available").WithError(err)
	case errors.Is(err, repository.ErrVersionConflict):
		return appErrors.ConflictError("Cart was modified during checkout, please retry").WithError(err)
	default:
		return appErrors.DatabaseError("Failed to place order").WithError(err)
	}
}

// afterCommit runs the side effects of a placed order. Nothing here can undo the order.
func (s *checkoutService) afterCommit(ctx context.Context, order *models.Order) {
	metrics.RecordOrder(string(order.PaymentMethod))

	s.Notifications.NotifyOrderPlaced(ctx, order)

	if err := s.Events.PublishOrderCreated(ctx, order); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to publish order event",
			slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}
}

func (s *checkoutService) CreateCashOrder(ctx context.Context, cartID uuid.UUID, address models.ShippingAddress, requester *models.Claims) (*models.Order, error) {
	cart, err := s.loadCheckoutCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	order := s.newOrder(cart, address, models.PaymentMethodCash, requesterID(requester))

	if err := s.Checkout.CommitOrder(ctx, order, cart, repository.CommitOptions{RecordRanking: true}); err != nil {
		return nil, commitError(err)
	}

	s.afterCommit(ctx, order)

	return order, nil
}

func addressMetadata(address *models.ShippingAddress) map[string]string {
	metadata := map[string]string{}
	if address == nil {
		return metadata
	}

	for key, value := range map[string]string{
		metaDetails:    address.Details,
		metaPhone:      address.Phone,
		metaCity:       address.City,
		metaPostalCode: address.PostalCode,
		metaEmail:      address.Email,
	} {
		if value != "" {
			metadata[key] = value
		}
	}

	return metadata
}

func addressFromMetadata(metadata map[string]string) models.ShippingAddress {
	return models.ShippingAddress{
		Details:    metadata[metaDetails],
		Phone:      metadata[metaPhone],
		City:       metadata[metaCity],
		PostalCode: metadata[metaPostalCode],
		Email:      metadata[metaEmail],
	}
}

func (s *checkoutService) CreateCheckoutSession(ctx context.Context, cartID uuid.UUID, req *models.CheckoutSessionRequest, requester *models.Claims) (*models.CheckoutSessionResponse, error) {
	cart, err := s.loadCheckoutCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	var address *models.ShippingAddress
	if req != nil && req.ShippingAddress != nil {
		sanitized := s.sanitizeAddress(*req.ShippingAddress)
		address = &sanitized
	}

	email := ""
	if requester != nil {
		email = requester.Email
	}
	if email == "" && address != nil {
		email = address.Email
	}

	amount := OrderTotal(cart, s.pricing.TaxPrice, s.pricing.ShippingPrice)

	session, err := s.Gateway.CreateCheckoutSession(&stripe.CheckoutSessionParams{
		Amount:            amount,
		Currency:          s.gateway.Currency,
		ProductName:       fmt.Sprintf("Order for cart %s", cart.ID),
		CustomerEmail:     email,
		ClientReferenceID: cart.ID.String(),
		SuccessURL:        s.gateway.SuccessURL,
		CancelURL:         s.gateway.CancelURL,
		Metadata:          addressMetadata(address),
	})
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to create checkout session").WithError(err)
	}

	payment := &models.Payment{
		ID:        uuid.New(),
		SessionID: session.ID,
		CartID:    cart.ID,
		UserID:    requesterID(requester),
		Amount:    amount,
		Currency:  s.gateway.Currency,
		Status:    models.PaymentStatusPending,
	}

	if err := s.Payments.CreatePayment(ctx, payment); err != nil {
		return nil, appErrors.DatabaseError("Failed to record payment").WithError(err)
	}

	return &models.CheckoutSessionResponse{SessionID: session.ID, URL: session.URL}, nil
}

// HandleWebhook turns a completed checkout session into a paid card order.
// Deliveries that cannot ever succeed are acknowledged so the gateway stops
// retrying; transient failures return an error and release the claim.
func (s *checkoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	logger := middleware.LoggerFromContext(ctx)

	event, err := s.Gateway.VerifyWebhookSignature(payload, signature)
	if err != nil {
		metrics.RecordWebhook(webhookRejected)
		return appErrors.InvalidSignatureError("Webhook signature verification failed").WithError(err)
	}

	if event.Type != stripe.EventCheckoutSessionCompleted {
		logger.Info("Ignoring webhook event", slog.String("event_type", string(event.Type)))
		metrics.RecordWebhook(webhookIgnored)
		return nil
	}

	if event.Data == nil {
		metrics.RecordWebhook(webhookRejected)
		return appErrors.BadRequestError("Webhook event has no data")
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil || session.ID == "" {
		metrics.RecordWebhook(webhookRejected)
		return appErrors.BadRequestError("Malformed checkout session payload").WithError(err)
	}

	logger = logger.With(slog.String("session_id", session.ID))
	claimKey := webhookClaimPrefix + session.ID

	claimed, err := s.Claims.Claim(ctx, claimKey, s.gateway.WebhookClaimTTL)
	if err != nil {
		// the unique session id on orders still guards against duplicates
		logger.Warn("Webhook claim unavailable", slog.Any("error", err))
		claimed = true
	}
	if !claimed {
		logger.Info("Duplicate webhook delivery in flight")
		metrics.RecordWebhook(webhookDuplicate)
		return nil
	}

	outcome, err := s.completeSession(ctx, logger, &session)
	if err != nil {
		if releaseErr := s.Claims.Release(ctx, claimKey); releaseErr != nil {
			logger.Warn("Failed to release webhook claim", slog.Any("error", releaseErr))
		}
		metrics.RecordWebhook(webhookFailed)
		return err
	}

	metrics.RecordWebhook(outcome)
	return nil
}

func (s *checkoutService) completeSession(ctx context.Context, logger *slog.Logger, session *stripe.CheckoutSession) (string, error) {
	if _, err := s.Orders.GetOrderBySessionID(ctx, session.ID); err == nil {
		logger.Info("Order already exists for session")
		return webhookDuplicate, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", appErrors.DatabaseError("Failed to look up order").WithError(err)
	}

	cartID, err := uuid.Parse(session.ClientReferenceID)
	if err != nil {
		logger.Warn("Checkout session has no usable cart reference", slog.String("client_reference_id", session.ClientReferenceID))
		return webhookIgnored, nil
	}

	cart, err := s.Carts.GetCartByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Cart for checkout session no longer exists", slog.String("cart_id", cartID.String()))
			return webhookIgnored, nil
		}
		return "", appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		logger.Warn("Cart for checkout session is empty", slog.String("cart_id", cartID.String()))
		return webhookIgnored, nil
	}

	email := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}

	var owner *uuid.UUID
	if email != "" {
		user, err := s.Users.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			owner = &user.ID
		case !errors.Is(err, repository.ErrNotFound):
			return "", appErrors.DatabaseError("Failed to look up purchaser").WithError(err)
		}
	}

	address := addressFromMetadata(session.Metadata)
	if address.Email == "" {
		address.Email = email
	}

	order := s.newOrder(cart, address, models.PaymentMethodCard, owner)
	paidAt := time.Now()
	sessionID := session.ID
	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentSessionID = &sessionID
	// the amount actually charged is authoritative
	order.TotalOrderPrice = stripe.FromMinorUnits(session.AmountTotal)

	// card orders do not feed the best-seller tally
	err = s.Checkout.CommitOrder(ctx, order, cart, repository.CommitOptions{RecordRanking: false})
	if errors.Is(err, repository.ErrDuplicate) {
		logger.Info("Order for session committed concurrently")
		return webhookDuplicate, nil
	}
	if err != nil {
		return "", commitError(err)
	}

	if err := s.Payments.UpdateStatusBySession(ctx, session.ID, models.PaymentStatusPaid); err != nil {
		logger.Warn("Failed to mark payment paid", slog.Any("error", err))
	}

	s.afterCommit(ctx, order)

	logger.Info("Card order created", slog.String("order_id", order.ID.String()))

	return webhookProcessed, nil
}
