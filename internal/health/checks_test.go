package health

import (
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/eshop-checkout/pkg/stripe/mocks"
	"github.com/stretchr/testify/assert"
)

func TestStripeCheck(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ping").Return(nil).Once()

		assert.NoError(t, stripeCheck(client)(t.Context()))
		client.AssertExpectations(t)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ping").Return(errors.New("invalid api key")).Once()

		err := stripeCheck(client)(t.Context())

		assert.ErrorContains(t, err, "invalid api key")
	})

	t.Run("Not configured", func(t *testing.T) {
		assert.Error(t, stripeCheck(nil)(t.Context()))
	})
}
