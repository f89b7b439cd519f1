package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Product is the slice of the catalog the checkout pipeline reads and writes.
type Product struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	ImageCover string    `json:"image_cover"`
	Quantity   int64     `json:"quantity"`
	Sold       int64     `json:"sold"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type InventoryAdjustment struct {
	ProductID uuid.UUID
	Quantity  int
}

// AggregateAdjustments sums quantities per product, ordered by product id so
// that concurrent orders lock product rows in the same order.
func AggregateAdjustments(items []OrderItem) []InventoryAdjustment {
	totals := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		totals[item.ProductID] += item.Quantity
	}

	adjustments := make([]InventoryAdjustment, 0, len(totals))
	for productID, quantity := range totals {
		adjustments = append(adjustments, InventoryAdjustment{ProductID: productID, Quantity: quantity})
	}

	sort.Slice(adjustments, func(i, j int) bool {
		return adjustments[i].ProductID.String() < adjustments[j].ProductID.String()
	})

	return adjustments
}
