package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusExpired PaymentStatus = "expired"
)

// Payment records a gateway checkout session opened for a cart.
type Payment struct {
	ID        uuid.UUID     `json:"id"`
	SessionID string        `json:"session_id"`
	CartID    uuid.UUID     `json:"cart_id"`
	UserID    *uuid.UUID    `json:"user_id,omitempty"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
