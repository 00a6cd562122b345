package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// EventPublisherPort emits listing mutation events to interested consumers.
// Publishing failures are reported but must not roll back the mutation.
type EventPublisherPort interface {
	Publish(ctx context.Context, event domain.ListingEvent) error
}
