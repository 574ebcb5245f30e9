package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"naijakart/internal/models"
)

const routingKeyOrderCreated = "order.created"

// AMQP publishes order events to a durable direct exchange.
type AMQP struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQP(url, exchange string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQP{conn: conn, channel: ch, exchange: exchange}, nil
}

func (a *AMQP) PublishOrderCreated(ctx context.Context, event models.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		ContentType:  "application/json",
		Body:         body,
	}

	return a.channel.PublishWithContext(
		ctx,
		a.exchange,
		routingKeyOrderCreated,
		false, // mandatory
		false, // immediate
		msg,
	)
}

func (a *AMQP) Close() {
	if a.channel != nil {
		_ = a.channel.Close()
	}
	if a.conn != nil {
		_ = a.conn.Close()
	}
}
