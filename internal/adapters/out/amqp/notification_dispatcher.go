// Package amqp publishes order transition events to RabbitMQ so downstream
// services can notify the affected customer and workers.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"osonish/internal/core/domain/model/order"
	"osonish/internal/core/domain/services"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// exchangeName is the topic exchange transition events are published to.
	exchangeName = "orders.transitions"

	contentTypeJSON = "application/json"
)

// TransitionEvent is the wire format of a published transition.
// Consumers key off Transition ("complete" or "cancel") to pick the
// notification text for the customer and workers.
type TransitionEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	Title       string    `json:"title"`
	ServiceDate string    `json:"service_date"`
	Status      string    `json:"status"`
	Transition  string    `json:"transition"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RabbitNotificationDispatcher implements NotificationDispatcher over a
// RabbitMQ channel. Events are published persistent to a topic exchange with
// the transition kind as routing key, so consumers can subscribe to
// completions and cancellations separately.
type RabbitNotificationDispatcher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitNotificationDispatcher connects to RabbitMQ at the given URL and
// declares the transitions exchange. Close must be called on shutdown.
func NewRabbitNotificationDispatcher(url string) (*RabbitNotificationDispatcher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitNotificationDispatcher{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (d *RabbitNotificationDispatcher) Close() {
	if d == nil {
		return
	}
	if d.ch != nil {
		_ = d.ch.Close()
	}
	if d.conn != nil {
		_ = d.conn.Close()
	}
}

// NotifyTransitioned publishes the transition event for the given order.
// Routing key is "order.<transition>", e.g. "order.complete".
func (d *RabbitNotificationDispatcher) NotifyTransitioned(
	ctx context.Context,
	aggregate *order.Order,
	transition services.Transition,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := TransitionEvent{
		OrderID:     aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID().String(),
		Title:       aggregate.Title(),
		ServiceDate: aggregate.ServiceDate().String(),
		Status:      aggregate.Status().String(),
		Transition:  transition.String(),
		OccurredAt:  aggregate.UpdatedAt(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transition event: %w", err)
	}

	routingKey := "order." + transition.String()
	return d.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  contentTypeJSON,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}
