package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

type ShippingAddress struct {
	Details    string `json:"details" validate:"required,max=500"`
	Phone      string `json:"phone" validate:"required,max=30"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty"`
	Price     float64   `json:"price"`
}

type Order struct {
	ID               uuid.UUID       `json:"id"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	Items            []OrderItem     `json:"cart_items"`
	ShippingAddress  ShippingAddress `json:"shipping_address"`
	TaxPrice         float64         `json:"tax_price"`
	ShippingPrice    float64         `json:"shipping_price"`
	TotalOrderPrice  float64         `json:"total_order_price"`
	PaymentMethod    PaymentMethod   `json:"payment_method_type"`
	IsPaid           bool            `json:"is_paid"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	IsDelivered      bool            `json:"is_delivered"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
	PaymentSessionID *string         `json:"payment_session_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Adjustments folds the order lines into one inventory adjustment per product.
func (o *Order) Adjustments() []InventoryAdjustment {
	return AggregateAdjustments(o.Items)
}

type CreateOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
}

type CheckoutSessionRequest struct {
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty" validate:"omitempty"`
}

type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
