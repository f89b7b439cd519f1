package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/cache"
	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Subtotal is the sum of quantity times unit price over all lines, rounded to cents.
func Subtotal(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(moneyPlaces).InexactFloat64()
}

// DiscountedTotal takes percent off subtotal, rounding half away from zero to cents.
func DiscountedTotal(subtotal, percent float64) float64 {
	base := decimal.NewFromFloat(subtotal)
	discount := base.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100))

	return base.Sub(discount).Round(moneyPlaces).InexactFloat64()
}

// OrderTotal adds tax and shipping to the cart's effective total.
func OrderTotal(cart *models.Cart, taxPrice, shippingPrice float64) float64 {
	return decimal.NewFromFloat(cart.EffectiveTotal()).
		Add(decimal.NewFromFloat(taxPrice)).
		Add(decimal.NewFromFloat(shippingPrice)).
		Round(moneyPlaces).
		InexactFloat64()
}

// recalculate refreshes the subtotal after a line change. Any applied coupon is dropped.
func recalculate(cart *models.Cart) {
	cart.Subtotal = Subtotal(cart.Items)
	cart.DiscountedTotal = nil
}

func (s *cartService) ApplyCoupon(ctx context.Context, identity models.CartIdentity, code string) (*models.CartResponse, error) {
	code = strings.TrimSpace(code)

	coupon, err := cache.Fetch(ctx, s.cache, cache.Key(cache.CouponKeyPrefix, code), s.cacheTTL,
		func(ctx context.Context) (*models.Coupon, error) {
			return s.couponRepo.GetCouponByCode(ctx, code)
		})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.InvalidCouponError("Coupon is invalid or expired")
		}
		return nil, appErrors.DatabaseError("Failed to fetch coupon").WithError(err)
	}

	if !coupon.ValidAt(s.now()) {
		return nil, appErrors.InvalidCouponError("Coupon is invalid or expired")
	}

	cart, err := s.mutate(ctx, identity, func(cart *models.Cart) error {
		discounted := DiscountedTotal(cart.Subtotal, coupon.Discount)
		cart.DiscountedTotal = &discounted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.respond(identity, cart), nil
}

func defaultClock() time.Time {
	return time.Now()
}
