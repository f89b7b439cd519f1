package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/aaravmahajanofficial/eshop-checkout/pkg/sendGrid"
	emailMocks "github.com/aaravmahajanofficial/eshop-checkout/pkg/sendGrid/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Dispatch(t *testing.T) {
	t.Run("Success - Text body derived from HTML", func(t *testing.T) {
		// Arrange
		repo := mocks.NewNotificationRepository(t)
		email := emailMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email, "")

		repo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Recipient == "buyer@example.com" && n.Status == models.StatusPending
		})).Return(nil).Once()
		email.On("Send", mock.Anything, mock.MatchedBy(func(m *sendGrid.Message) bool {
			return strings.Contains(m.Text, "Hello & welcome") && !strings.Contains(m.Text, "<p>") && m.HTML != ""
		})).Return(nil).Once()
		repo.On("UpdateNotificationStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), models.StatusSent, "", mock.AnythingOfType("*time.Time")).
			Return(nil).Once()

		// Act
		err := svc.Dispatch(t.Context(), service.EmailMessage{
			To:      "buyer@example.com",
			Subject: "Hi",
			HTML:    "<p>Hello &amp; welcome</p>\n<p>Bye</p>",
		})

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Provider rejects the email", func(t *testing.T) {
		// Arrange
		repo := mocks.NewNotificationRepository(t)
		email := emailMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email, "")
		sendErr := errors.New("failed to send email, status code: 401")

		repo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil).Once()
		email.On("Send", mock.Anything, mock.Anything).Return(sendErr).Once()
		repo.On("UpdateNotificationStatus", mock.Anything, mock.Anything, models.StatusFailed, sendErr.Error(), (*time.Time)(nil)).
			Return(nil).Once()

		// Act
		err := svc.Dispatch(t.Context(), service.EmailMessage{To: "buyer@example.com", Subject: "Hi", Text: "plain"})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeThirdPartyError)
		assert.ErrorIs(t, err, sendErr)
	})

	t.Run("Failure - Audit row not written", func(t *testing.T) {
		// Arrange
		repo := mocks.NewNotificationRepository(t)
		email := emailMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email, "")

		repo.On("CreateNotification", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		// Act
		err := svc.Dispatch(t.Context(), service.EmailMessage{To: "buyer@example.com", Subject: "Hi", Text: "plain"})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing recipient", func(t *testing.T) {
		svc := service.NewNotificationService(mocks.NewNotificationRepository(t), emailMocks.NewEmailService(t), "")

		assertAppError(t, svc.Dispatch(t.Context(), service.EmailMessage{Subject: "Hi"}), appErrors.ErrCodeBadRequest)
	})
}

func TestNotificationService_NotifyOrderPlaced(t *testing.T) {
	newOrder := func(email string) *models.Order {
		return &models.Order{
			ID:              uuid.New(),
			Items:           []models.OrderItem{{ProductID: uuid.New(), Quantity: 2, Price: 10}},
			ShippingAddress: models.ShippingAddress{Details: "1 Nile St", Phone: "0100", City: "Cairo", Email: email},
			TotalOrderPrice: 20,
			PaymentMethod:   models.PaymentMethodCash,
		}
	}

	t.Run("Customer and operations emails", func(t *testing.T) {
		// Arrange
		repo := mocks.NewNotificationRepository(t)
		email := emailMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email, "ops@example.com")
		order := newOrder("buyer@example.com")
		shortID := order.ID.String()[:8]

		repo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.OrderID != nil && *n.OrderID == order.ID
		})).Return(nil).Twice()
		email.On("Send", mock.Anything, mock.MatchedBy(func(m *sendGrid.Message) bool {
			return m.To == "buyer@example.com" && m.Subject == "Your order #"+shortID+" has been received" &&
				strings.Contains(m.HTML, "20.00") && strings.Contains(m.Text, "Cairo")
		})).Return(nil).Once()
		email.On("Send", mock.Anything, mock.MatchedBy(func(m *sendGrid.Message) bool {
			return m.To == "ops@example.com" && m.Subject == "New cash order #"+shortID &&
				strings.Contains(m.Text, "by a guest")
		})).Return(nil).Once()
		repo.On("UpdateNotificationStatus", mock.Anything, mock.Anything, models.StatusSent, "", mock.Anything).Return(nil).Twice()

		// Act
		svc.NotifyOrderPlaced(t.Context(), order)
	})

	t.Run("Failures are swallowed", func(t *testing.T) {
		// Arrange
		repo := mocks.NewNotificationRepository(t)
		email := emailMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email, "")

		repo.On("CreateNotification", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		// Act
		svc.NotifyOrderPlaced(t.Context(), newOrder("buyer@example.com"))
	})

	t.Run("Nobody to notify", func(t *testing.T) {
		repo := mocks.NewNotificationRepository(t)
		email := emailMocks.NewEmailService(t)
		svc := service.NewNotificationService(repo, email, "")

		svc.NotifyOrderPlaced(t.Context(), newOrder(""))

		repo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	})
}
