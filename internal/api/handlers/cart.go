package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	assets      *AssetPresenter
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService, assets *AssetPresenter) *CartHandler {
	return &CartHandler{cartService: cartService, assets: assets, validator: validator.New()}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds a product line to the caller's cart, creating the cart when needed. An existing line for the same product and color has its quantity replaced. Guests receive a cart_token to send back as cartId.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product, color and quantity (default 1)"
//	@Success		200		{object}	models.CartResponse		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid quantity or input"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		409		{object}	response.ErrorResponse	"Cart modified concurrently"
//	@Router			/cart [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		identity, err := resolveIdentity(r, req.CartID)
		if err != nil {
			response.Error(w, err)
			return
		}
		logger = logger.With(slog.String("cart_identity", identity.String()))

		cart, err := h.cartService.AddItem(r.Context(), identity, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("productId", req.ProductID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("cartId", cart.Cart.ID.String()))
		response.Success(w, http.StatusOK, h.assets.Cart(cart))
	}
}

// GetCart godoc
//	@Summary		Get the current cart
//	@Tags			Cart
//	@Produce		json
//	@Param			cartId	query		string					false	"Guest cart token"	Format(uuid)
//	@Success		200		{object}	models.CartResponse		"Current cart"
//	@Failure		404		{object}	response.ErrorResponse	"No cart for this caller"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		identity, err := resolveIdentity(r, "")
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), identity)
		if err != nil {
			logger.Warn("Failed to get cart", slog.String("cart_identity", identity.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.assets.Cart(cart))
	}
}

// ClearCart godoc
//	@Summary	Delete the current cart
//	@Tags		Cart
//	@Param		cartId	query	string	false	"Guest cart token"	Format(uuid)
//	@Success	204		"Cart deleted"
//	@Failure	404		{object}	response.ErrorResponse	"No cart for this caller"
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		identity, err := resolveIdentity(r, "")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.cartService.ClearCart(r.Context(), identity); err != nil {
			logger.Warn("Failed to clear cart", slog.String("cart_identity", identity.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared", slog.String("cart_identity", identity.String()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// UpdateItemQuantity godoc
//	@Summary		Change the quantity of a cart line
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			itemId	path		string							true	"Cart line ID"	Format(uuid)
//	@Param			body	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200		{object}	models.CartResponse				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Invalid quantity"
//	@Failure		404		{object}	response.ErrorResponse			"Cart or line not found"
//	@Router			/cart/{itemId} [put]
func (h *CartHandler) UpdateItemQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		lineID, err := utils.ParseID(r, "itemId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		identity, err := resolveIdentity(r, req.CartID)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.UpdateItemQuantity(r.Context(), identity, lineID, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update cart line", slog.String("itemId", lineID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.assets.Cart(cart))
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Description	Removing a line that is not in the cart is not an error.
//	@Tags			Cart
//	@Produce		json
//	@Param			itemId	path		string					true	"Cart line ID"		Format(uuid)
//	@Param			cartId	query		string					false	"Guest cart token"	Format(uuid)
//	@Success		200		{object}	models.CartResponse		"Updated cart"
//	@Failure		404		{object}	response.ErrorResponse	"No cart for this caller"
//	@Router			/cart/{itemId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		lineID, err := utils.ParseID(r, "itemId")
		if err != nil {
			response.Error(w, err)
			return
		}

		identity, err := resolveIdentity(r, "")
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), identity, lineID)
		if err != nil {
			logger.Warn("Failed to remove cart line", slog.String("itemId", lineID.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.assets.Cart(cart))
	}
}

// ApplyCoupon godoc
//	@Summary		Apply a coupon to the cart
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.ApplyCouponRequest	true	"Coupon code"
//	@Success		200		{object}	models.CartResponse			"Cart with discounted total"
//	@Failure		400		{object}	response.ErrorResponse		"Coupon is invalid or expired"
//	@Failure		404		{object}	response.ErrorResponse		"No cart for this caller"
//	@Router			/cart/applyCoupon [put]
func (h *CartHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid apply coupon input")
			return
		}

		identity, err := resolveIdentity(r, req.CartID)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.ApplyCoupon(r.Context(), identity, req.Coupon)
		if err != nil {
			logger.Warn("Failed to apply coupon", slog.String("coupon", req.Coupon), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Coupon applied", slog.String("coupon", req.Coupon), slog.String("cartId", cart.Cart.ID.String()))
		response.Success(w, http.StatusOK, h.assets.Cart(cart))
	}
}

// MergeGuestCart godoc
//	@Summary		Merge a guest cart into the user's cart
//	@Description	The guest cart is named by cartId (body or query) or, failing that, by the client's network origin.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.MergeCartRequest	false	"Guest cart token"
//	@Success		200		{object}	models.CartResponse		"Merged cart"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Guest cart not found"
//	@Security		BearerAuth
//	@Router			/cart/mergeGuestCart [post]
func (h *CartHandler) MergeGuestCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart merge attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.MergeCartRequest
		if !utils.ParseOptionalAndValidate(r, w, &req, h.validator) {
			return
		}

		guest, err := resolveGuestIdentity(r, req.CartID)
		if err != nil {
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.MergeGuestCart(r.Context(), claims.UserID, guest)
		if err != nil {
			logger.Warn("Failed to merge guest cart", slog.String("guest", guest.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Guest cart merged", slog.String("guest", guest.String()), slog.String("cartId", cart.Cart.ID.String()))
		response.Success(w, http.StatusOK, h.assets.Cart(cart))
	}
}
