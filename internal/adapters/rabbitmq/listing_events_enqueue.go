package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventsAdapter publishes listing lifecycle events to the broker.
// Every payload is checked against its JSON Schema contract before leaving
// the process.
type ListingEventsAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewListingEventsAdapter(producer *rabbitmq_producer.Publisher) (*ListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &ListingEventsAdapter{producer: producer}, nil
}

func routingKeyFor(eventType string) (string, error) {
	switch eventType {
	case domain.EventListingCreated:
		return constants.RoutingKeyListingCreated, nil
	case domain.EventListingUpdated:
		return constants.RoutingKeyListingUpdated, nil
	default:
		return "", fmt.Errorf("no routing key for event type %q", eventType)
	}
}

func (a *ListingEventsAdapter) Publish(ctx context.Context, event domain.ListingEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":  "ListingEventsAdapter",
		"event_type": event.EventType,
	})

	routingKey, err := routingKeyFor(event.EventType)
	if err != nil {
		adapterLogger.Error("Unknown event type", err, nil)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal event to JSON", err, nil)
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	if err := contracts.ValidateEvent(event.EventType, event.EventVersion, body); err != nil {
		adapterLogger.Error("Event payload failed contract validation", err, nil)
		return fmt.Errorf("event contract validation: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    event.EventType,
			"event-version": event.EventVersion,
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return err
	}

	adapterLogger.Info("Published listing event", port.Fields{"routing_key": routingKey})
	return nil
}
