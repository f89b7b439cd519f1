package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/cache"
	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/google/uuid"
)

// maxCartRetries bounds how often a read-modify-write is replayed after a version conflict.
const maxCartRetries = 3

// errUnchanged short-circuits a mutation that leaves the cart as it was.
var errUnchanged = errors.New("cart unchanged")

type CartService interface {
	AddItem(ctx context.Context, identity models.CartIdentity, req *models.AddItemRequest) (*models.CartResponse, error)
	GetCart(ctx context.Context, identity models.CartIdentity) (*models.CartResponse, error)
	UpdateItemQuantity(ctx context.Context, identity models.CartIdentity, lineID uuid.UUID, quantity float64) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, identity models.CartIdentity, lineID uuid.UUID) (*models.CartResponse, error)
	ClearCart(ctx context.Context, identity models.CartIdentity) error
	ApplyCoupon(ctx context.Context, identity models.CartIdentity, code string) (*models.CartResponse, error)
	MergeGuestCart(ctx context.Context, userID uuid.UUID, guest models.CartIdentity) (*models.CartResponse, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	cache       cache.Cache
	cacheTTL    time.Duration
	now         func() time.Time
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, couponRepo repository.CouponRepository, c cache.Cache, cacheTTL time.Duration) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		cache:       c,
		cacheTTL:    cacheTTL,
		now:         defaultClock,
	}
}

func parseQuantity(quantity float64) (int, error) {
	if quantity <= 0 || quantity != math.Trunc(quantity) || quantity > math.MaxInt32 {
		return 0, appErrors.InvalidQuantityError("Quantity must be a positive whole number")
	}

	return int(quantity), nil
}

func cartNotFound(err error) *appErrors.AppError {
	return appErrors.NotFoundError("Cart not found").WithError(err)
}

// loadCart maps repository failures onto API errors.
func (s *cartService) loadCart(ctx context.Context, identity models.CartIdentity) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCart(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, cartNotFound(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return cart, nil
}

// mutate re-reads and re-applies fn until the versioned write lands.
func (s *cartService) mutate(ctx context.Context, identity models.CartIdentity, fn func(*models.Cart) error) (*models.Cart, error) {
	for attempt := 1; attempt <= maxCartRetries; attempt++ {
		cart, err := s.loadCart(ctx, identity)
		if err != nil {
			return nil, err
		}

		if err := fn(cart); err != nil {
			if errors.Is(err, errUnchanged) {
				return cart, nil
			}
			return nil, err
		}

		err = s.cartRepo.UpdateCart(ctx, cart)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
		}

		middleware.LoggerFromContext(ctx).Debug("Cart version conflict, retrying",
			slog.String("cart_id", cart.ID.String()), slog.Int("attempt", attempt))
	}

	return nil, appErrors.ConflictError("Cart was modified concurrently, please retry")
}

func (s *cartService) respond(identity models.CartIdentity, cart *models.Cart) *models.CartResponse {
	resp := &models.CartResponse{Cart: cart, NumItems: len(cart.Items)}
	if identity.IsGuest() {
		resp.CartToken = cart.ID.String()
	}

	return resp
}

func newCart(identity models.CartIdentity) *models.Cart {
	cart := &models.Cart{ID: uuid.New(), Items: []models.CartItem{}}

	switch identity.Kind {
	case models.IdentityUser:
		userID := identity.UserID
		cart.UserID = &userID
	case models.IdentityGuestOrigin:
		cart.ClientOrigin = identity.Origin
	}

	return cart
}

// setLine replaces the quantity of an existing product+color line or appends a new one.
func setLine(cart *models.Cart, product *models.Product, color string, quantity int) {
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID && cart.Items[i].Color == color {
			cart.Items[i].Quantity = quantity
			recalculate(cart)
			return
		}
	}

	cart.Items = append(cart.Items, models.CartItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Quantity:  quantity,
		Color:     color,
		UnitPrice: product.Price,
	})
	recalculate(cart)
}

func (s *cartService) AddItem(ctx context.Context, identity models.CartIdentity, req *models.AddItemRequest) (*models.CartResponse, error) {
	quantity := 1
	if req.Quantity != nil {
		q, err := parseQuantity(*req.Quantity)
		if err != nil {
			return nil, err
		}
		quantity = q
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	for attempt := 1; attempt <= maxCartRetries; attempt++ {
		cart, err := s.cartRepo.GetCart(ctx, identity)
		if errors.Is(err, repository.ErrNotFound) {
			cart = newCart(identity)
			setLine(cart, product, req.Color, quantity)

			err = s.cartRepo.CreateCart(ctx, cart)
			if err == nil {
				return s.respond(identity, cart), nil
			}
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
		}
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
		}

		setLine(cart, product, req.Color, quantity)

		err = s.cartRepo.UpdateCart(ctx, cart)
		if err == nil {
			return s.respond(identity, cart), nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
		}
	}

	return nil, appErrors.ConflictError("Cart was modified concurrently, please retry")
}

func (s *cartService) GetCart(ctx context.Context, identity models.CartIdentity) (*models.CartResponse, error) {
	cart, err := s.loadCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	s.decorate(ctx, cart)

	return s.respond(identity, cart), nil
}

// decorate fills the display-only title and cover of each line.
func (s *cartService) decorate(ctx context.Context, cart *models.Cart) {
	if len(cart.Items) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to load cart product details",
			slog.String("cart_id", cart.ID.String()), slog.Any("error", err))
		return
	}

	for i := range cart.Items {
		if product, ok := products[cart.Items[i].ProductID]; ok {
			cart.Items[i].Title = product.Title
			cart.Items[i].ImageCover = product.ImageCover
		}
	}
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, identity models.CartIdentity, lineID uuid.UUID, quantity float64) (*models.CartResponse, error) {
	q, err := parseQuantity(quantity)
	if err != nil {
		return nil, err
	}

	cart, err := s.mutate(ctx, identity, func(cart *models.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ID == lineID {
				cart.Items[i].Quantity = q
				recalculate(cart)
				return nil
			}
		}
		return appErrors.NotFoundError("Cart item not found")
	})
	if err != nil {
		return nil, err
	}

	return s.respond(identity, cart), nil
}

// RemoveItem is idempotent: a line that is already gone leaves the cart untouched.
func (s *cartService) RemoveItem(ctx context.Context, identity models.CartIdentity, lineID uuid.UUID) (*models.CartResponse, error) {
	cart, err := s.mutate(ctx, identity, func(cart *models.Cart) error {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ID != lineID {
				kept = append(kept, item)
			}
		}

		if len(kept) == len(cart.Items) {
			return errUnchanged
		}

		cart.Items = kept
		recalculate(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.respond(identity, cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, identity models.CartIdentity) error {
	cart, err := s.loadCart(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.cartRepo.DeleteCart(ctx, cart.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return cartNotFound(err)
		}
		return appErrors.DatabaseError("Failed to delete cart").WithError(err)
	}

	return nil
}

// mergeLines folds guest lines into the target: matching product+color lines
// are summed, the rest are appended in order.
func mergeLines(target *models.Cart, guestItems []models.CartItem) {
	for _, guestItem := range guestItems {
		merged := false
		for i := range target.Items {
			if target.Items[i].ProductID == guestItem.ProductID && target.Items[i].Color == guestItem.Color {
				target.Items[i].Quantity += guestItem.Quantity
				merged = true
				break
			}
		}
		if !merged {
			target.Items = append(target.Items, guestItem)
		}
	}

	recalculate(target)
}

func (s *cartService) MergeGuestCart(ctx context.Context, userID uuid.UUID, guest models.CartIdentity) (*models.CartResponse, error) {
	if !guest.IsGuest() {
		return nil, appErrors.BadRequestError("A guest cart token or origin is required")
	}

	userIdentity := models.UserIdentity(userID)

	for attempt := 1; attempt <= maxCartRetries; attempt++ {
		guestCart, err := s.cartRepo.GetCart(ctx, guest)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, appErrors.NotFoundError("Guest cart not found").WithError(err)
			}
			return nil, appErrors.DatabaseError("Failed to fetch guest cart").WithError(err)
		}

		userCart, err := s.cartRepo.GetCart(ctx, userIdentity)
		if errors.Is(err, repository.ErrNotFound) {
			err = s.cartRepo.ReassignCart(ctx, guestCart, userID)
			if err == nil {
				return s.respond(userIdentity, guestCart), nil
			}
			if errors.Is(err, repository.ErrVersionConflict) || errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return nil, appErrors.DatabaseError("Failed to assign guest cart").WithError(err)
		}
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
		}

		mergeLines(userCart, guestCart.Items)

		err = s.cartRepo.MergeCarts(ctx, userCart, guestCart)
		if err == nil {
			return s.respond(userIdentity, userCart), nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.DatabaseError("Failed to merge carts").WithError(err)
		}
	}

	return nil, appErrors.ConflictError("Cart was modified concurrently, please retry")
}
