// Package queue_publisher publishes domain events to RabbitMQ. Errors
// are logged and returned so callers can ignore a broker outage without
// interrupting the request that triggered the event.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/getaroag/getaroag-api/internal/queue"
)

// PublishListingPublished announces a freshly published car on the
// listing.published queue.
func PublishListingPublished(ctx context.Context, event q.ListingPublishedEvent) error {
	return publish(ctx, q.ListingQueueName, event)
}

// PublishBookingRequested announces a new rental request on the
// booking.requested queue.
func PublishBookingRequested(ctx context.Context, event q.BookingRequestedEvent) error {
	return publish(ctx, q.BookingQueueName, event)
}

// publish opens a short-lived connection, declares the durable queue
// (idempotent) and sends one persistent JSON message.
func publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
