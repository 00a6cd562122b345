package rabbitmq

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// NoopPublisher discards events. Used when event publishing is disabled so
// the rest of the service never has to check a feature flag.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) Publish(ctx context.Context, event domain.ListingEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping event", port.Fields{
		"event_type": event.EventType,
	})
	return nil
}
