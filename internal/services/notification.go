package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
	"github.com/aaravmahajanofficial/eshop-checkout/pkg/sendGrid"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(
	template.New("emails").
		Funcs(template.FuncMap{"money": formatMoney}).
		ParseFS(templateFS, "templates/*.html"),
)

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

type EmailMessage struct {
	To      string
	Subject string
	// Text is derived from HTML when left empty.
	Text    string
	HTML    string
	OrderID *uuid.UUID
}

type NotificationService interface {
	Dispatch(ctx context.Context, msg EmailMessage) error
	NotifyOrderPlaced(ctx context.Context, order *models.Order)
}

type notificationService struct {
	repo       repository.NotificationRepository
	email      sendGrid.EmailService
	adminEmail string
	textPolicy *bluemonday.Policy
}

func NewNotificationService(repo repository.NotificationRepository, email sendGrid.EmailService, adminEmail string) NotificationService {
	return &notificationService{
		repo:       repo,
		email:      email,
		adminEmail: adminEmail,
		textPolicy: bluemonday.StrictPolicy(),
	}
}

// plainText strips every tag and collapses the remaining lines.
func (s *notificationService) plainText(body string) string {
	stripped := html.UnescapeString(s.textPolicy.Sanitize(body))

	var lines []string
	for _, line := range strings.Split(stripped, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// Dispatch records an audit row, sends the email and stores the outcome.
func (s *notificationService) Dispatch(ctx context.Context, msg EmailMessage) error {
	if msg.To == "" {
		return appErrors.BadRequestError("Recipient is required")
	}

	text := msg.Text
	if text == "" && msg.HTML != "" {
		text = s.plainText(msg.HTML)
	}

	notification := &models.Notification{
		ID:        uuid.New(),
		OrderID:   msg.OrderID,
		Recipient: msg.To,
		Subject:   msg.Subject,
		Status:    models.StatusPending,
	}

	if err := s.repo.CreateNotification(ctx, notification); err != nil {
		return appErrors.DatabaseError("Failed to record notification").WithError(err)
	}

	logger := middleware.LoggerFromContext(ctx).With(slog.String("notification_id", notification.ID.String()))

	sendErr := s.email.Send(ctx, &sendGrid.Message{To: msg.To, Subject: msg.Subject, Text: text, HTML: msg.HTML})
	if sendErr != nil {
		if err := s.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, sendErr.Error(), nil); err != nil {
			logger.Warn("Failed to record notification failure", slog.Any("error", err))
		}
		return appErrors.ThirdPartyError("Failed to send email").WithError(sendErr)
	}

	sentAt := time.Now()
	if err := s.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, "", &sentAt); err != nil {
		logger.Warn("Failed to record notification delivery", slog.Any("error", err))
	}

	return nil
}

type orderEmailData struct {
	Order   *models.Order
	ShortID string
}

func render(name string, data orderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	return buf.String(), nil
}

// NotifyOrderPlaced emails the customer (when an address is known) and the
// operations inbox (when configured). Failures are logged only.
func (s *notificationService) NotifyOrderPlaced(ctx context.Context, order *models.Order) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("order_id", order.ID.String()))
	data := orderEmailData{Order: order, ShortID: order.ID.String()[:8]}
	orderID := order.ID

	send := func(to, subject, templateName string) {
		body, err := render(templateName, data)
		if err != nil {
			logger.Error("Failed to render order email", slog.Any("error", err))
			return
		}

		err = s.Dispatch(ctx, EmailMessage{To: to, Subject: subject, HTML: body, OrderID: &orderID})
		if err != nil {
			logger.Warn("Failed to send order email", slog.String("recipient", to), slog.Any("error", err))
		}
	}

	if to := order.ShippingAddress.Email; to != "" {
		send(to, fmt.Sprintf("Your order #%s has been received", data.ShortID), "order_confirmation.html")
	}

	if s.adminEmail != "" {
		send(s.adminEmail, fmt.Sprintf("New %s order #%s", order.PaymentMethod, data.ShortID), "order_admin.html")
	}
}
