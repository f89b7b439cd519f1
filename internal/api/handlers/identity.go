package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/google/uuid"
)

// resolveIdentity picks the cart a request works on: the authenticated user,
// else the guest cart token, else the client's network origin.
func resolveIdentity(r *http.Request, bodyCartID string) (models.CartIdentity, error) {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return models.UserIdentity(claims.UserID), nil
	}

	return resolveGuestIdentity(r, bodyCartID)
}

// resolveGuestIdentity ignores any authenticated user.
func resolveGuestIdentity(r *http.Request, bodyCartID string) (models.CartIdentity, error) {
	token := r.URL.Query().Get("cartId")
	if token == "" {
		token = bodyCartID
	}

	if token != "" {
		cartID, err := uuid.Parse(token)
		if err != nil {
			return models.CartIdentity{}, errors.BadRequestError("Invalid cartId format").WithError(err)
		}
		return models.GuestTokenIdentity(cartID), nil
	}

	return models.GuestOriginIdentity(clientOrigin(r)), nil
}

// clientOrigin never reads forwarding headers itself; those are only honoured
// by OriginResolver for trusted proxies.
func clientOrigin(r *http.Request) string {
	if origin, ok := middleware.OriginFromContext(r.Context()); ok {
		return origin
	}

	return middleware.RemoteHost(r)
}
