package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one product + color line. Title and ImageCover are display
// fields filled on read and are never persisted.
type CartItem struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Color      string    `json:"color,omitempty"`
	UnitPrice  float64   `json:"price"`
	Title      string    `json:"title,omitempty"`
	ImageCover string    `json:"image_cover,omitempty"`
}

type Cart struct {
	ID              uuid.UUID  `json:"id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	ClientOrigin    string     `json:"-"`
	Items           []CartItem `json:"items"`
	Subtotal        float64    `json:"total_cart_price"`
	DiscountedTotal *float64   `json:"total_price_after_discount,omitempty"`
	Version         int64      `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// EffectiveTotal is the discounted total when a coupon has been applied, the subtotal otherwise.
func (c *Cart) EffectiveTotal() float64 {
	if c.DiscountedTotal != nil {
		return *c.DiscountedTotal
	}

	return c.Subtotal
}

// Quantities arrive as JSON numbers so that fractional values can be
// rejected with a quantity error instead of a decoding error.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Color     string    `json:"color,omitempty" validate:"omitempty,max=50"`
	Quantity  *float64  `json:"quantity,omitempty"`
	CartID    string    `json:"cartId,omitempty" validate:"omitempty,uuid"`
}

type UpdateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
	CartID   string  `json:"cartId,omitempty" validate:"omitempty,uuid"`
}

type ApplyCouponRequest struct {
	Coupon string `json:"coupon" validate:"required,max=64"`
	CartID string `json:"cartId,omitempty" validate:"omitempty,uuid"`
}

type MergeCartRequest struct {
	CartID string `json:"cartId,omitempty" validate:"omitempty,uuid"`
}

// CartResponse carries the guest token back to clients without a user identity.
type CartResponse struct {
	Cart      *Cart  `json:"cart"`
	CartToken string `json:"cart_token,omitempty"`
	NumItems  int    `json:"num_of_cart_items"`
}
