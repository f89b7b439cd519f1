package models

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"name"`
	Discount  float64   `json:"discount"`
	ExpiresAt time.Time `json:"expire"`
}

func (c *Coupon) ValidAt(t time.Time) bool {
	return t.Before(c.ExpiresAt)
}
