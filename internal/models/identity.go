package models

import "github.com/google/uuid"

type IdentityKind string

const (
	IdentityUser        IdentityKind = "user"
	IdentityGuestToken  IdentityKind = "guestToken"
	IdentityGuestOrigin IdentityKind = "guestOrigin"
)

// CartIdentity selects the single open cart a request operates on.
// Exactly one of UserID, CartID or Origin is meaningful, depending on Kind.
type CartIdentity struct {
	Kind   IdentityKind
	UserID uuid.UUID
	CartID uuid.UUID
	Origin string
}

func UserIdentity(userID uuid.UUID) CartIdentity {
	return CartIdentity{Kind: IdentityUser, UserID: userID}
}

func GuestTokenIdentity(cartID uuid.UUID) CartIdentity {
	return CartIdentity{Kind: IdentityGuestToken, CartID: cartID}
}

func GuestOriginIdentity(origin string) CartIdentity {
	return CartIdentity{Kind: IdentityGuestOrigin, Origin: origin}
}

func (i CartIdentity) IsGuest() bool {
	return i.Kind != IdentityUser
}

func (i CartIdentity) String() string {
	switch i.Kind {
	case IdentityUser:
		return "user:" + i.UserID.String()
	case IdentityGuestToken:
		return "guestToken:" + i.CartID.String()
	default:
		return "guestOrigin:" + i.Origin
	}
}
