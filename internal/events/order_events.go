package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/config"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeOrderCreated = "order.created"

	publishTimeout = 10 * time.Second
)

type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

type OrderEvent struct {
	EventID       string               `json:"event_id"`
	Type          string               `json:"type"`
	OrderID       uuid.UUID            `json:"order_id"`
	UserID        *uuid.UUID           `json:"user_id,omitempty"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	IsPaid        bool                 `json:"is_paid"`
	Total         float64              `json:"total_order_price"`
	Lines         []OrderLine          `json:"lines"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func NewOrderCreatedEvent(order *models.Order) OrderEvent {
	lines := make([]OrderLine, len(order.Items))
	for i, item := range order.Items {
		lines[i] = OrderLine{ProductID: item.ProductID, Quantity: item.Quantity, Price: item.Price}
	}

	return OrderEvent{
		EventID:       uuid.NewString(),
		Type:          TypeOrderCreated,
		OrderID:       order.ID,
		UserID:        order.UserID,
		PaymentMethod: order.PaymentMethod,
		IsPaid:        order.IsPaid,
		Total:         order.TotalOrderPrice,
		Lines:         lines,
		OccurredAt:    time.Now().UTC(),
	}
}

// Publisher announces committed orders to downstream consumers.
// Publishing happens after the checkout transaction; callers log failures and carry on.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(cfg config.Kafka) Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return NewPublisherWithWriter(writer)
}

func NewPublisherWithWriter(writer MessageWriter) Publisher {
	return &kafkaPublisher{writer: writer}
}

// NewPublisher returns a Kafka publisher when enabled, a no-op otherwise.
func NewPublisher(cfg config.Kafka) Publisher {
	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		slog.Info("Order events disabled")
		return NopPublisher{}
	}

	slog.Info("Publishing order events", slog.Any("brokers", cfg.Brokers), slog.String("topic", cfg.Topic))
	return NewKafkaPublisher(cfg)
}

// PublishOrderCreated keys messages by order id so events for one order stay on one partition.
func (p *kafkaPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	event := NewOrderCreatedEvent(order)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	// detached from the request so a client disconnect does not drop the event
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return fmt.Errorf("publish %s event for order %s: %w", event.Type, order.ID, err)
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, *models.Order) error { return nil }

func (NopPublisher) Close() error { return nil }
