// Package notify publishes order lifecycle events to RabbitMQ so back-office
// consumers (kitchen displays, admin dashboards) learn about new orders
// without polling. Publishing is best-effort; the customer's order never
// fails because the broker is down.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"tableorder/internal/order"
)

const publishTimeout = 5 * time.Second

// OrderCreatedEvent is the wire format of the order.created message.
type OrderCreatedEvent struct {
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	StoreID     int64     `json:"store_id"`
	TableID     int64     `json:"table_id"`
	TotalAmount int64     `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// Dial connects to the broker and declares the topic exchange events are
// published to.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notify: failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("notify: failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("notify: failed to declare exchange %s: %w", exchange, err)
	}

	log.Info().Str("exchange", exchange).Msg("Connected to RabbitMQ")
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// OrderCreated publishes an order.created event for the given view.
func (p *Publisher) OrderCreated(ctx context.Context, view *order.View) error {
	event := OrderCreatedEvent{
		OrderID:     view.ID,
		OrderNumber: view.OrderNumber,
		StoreID:     view.StoreID,
		TableID:     view.TableID,
		TotalAmount: view.TotalAmount,
		ItemCount:   len(view.Items),
		CreatedAt:   view.CreatedAt,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notify: failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := fmt.Sprintf("order.created.%d", view.StoreID)
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("notify: failed to publish order.created: %w", err)
	}

	log.Debug().Str("routing_key", routingKey).Str("order_number", view.OrderNumber).Msg("notify: event published")
	return nil
}

func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
