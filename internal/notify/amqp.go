package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const pushQueueName = "notifications.push"

// AmqpNotifier publishes notification requests to a durable RabbitMQ queue.
// Every error is logged and swallowed: a dead broker must never fail a
// booking.
type AmqpNotifier struct {
	url string
}

func NewAmqpNotifier(url string) *AmqpNotifier {
	return &AmqpNotifier{url: url}
}

func (n *AmqpNotifier) Notify(ctx context.Context, req Request) {
	conn, err := amqp.Dial(n.url)
	if err != nil {
		log.Printf("notify: rabbitmq dial failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("notify: channel open failed: %v", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so requests survive broker restarts.
	if _, err := ch.QueueDeclare(
		pushQueueName, // name
		true,          // durable
		false,         // autoDelete
		false,         // exclusive
		false,         // noWait
		nil,           // args
	); err != nil {
		log.Printf("notify: queue declare failed: %v", err)
		return
	}

	body, err := json.Marshal(req)
	if err != nil {
		log.Printf("notify: marshal request failed: %v", err)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    req.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",            // default exchange
		pushQueueName, // routing key = queue name
		false,         // mandatory
		false,         // immediate
		pub,
	); err != nil {
		log.Printf("notify: publish failed: %v", err)
	}
}

var _ Notifier = (*AmqpNotifier)(nil)
