package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductOrderCount struct {
	ProductID   uuid.UUID `json:"product_id"`
	Title       string    `json:"title"`
	ImageCover  string    `json:"image_cover"`
	OrderCount  int64     `json:"order_count"`
	LastUpdated time.Time `json:"last_updated"`
}
