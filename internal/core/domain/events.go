package domain

import "time"

// Listing event types published after successful mutations. Consumers use
// them to invalidate any derived view of the collection.
const (
	EventListingCreated = "ListingCreatedEvent"
	EventListingUpdated = "ListingUpdatedEvent"

	EventVersion = "1.0.0"
)

// ListingEvent is the envelope published to the broker after a mutation.
type ListingEvent struct {
	EventType    string    `json:"eventType"`
	EventVersion string    `json:"eventVersion"`
	OccurredAt   time.Time `json:"occurredAt"`
	Listing      Listing   `json:"listing"`
}

func NewListingCreatedEvent(l Listing) ListingEvent {
	return ListingEvent{
		EventType:    EventListingCreated,
		EventVersion: EventVersion,
		OccurredAt:   time.Now().UTC(),
		Listing:      l,
	}
}

func NewListingUpdatedEvent(l Listing) ListingEvent {
	return ListingEvent{
		EventType:    EventListingUpdated,
		EventVersion: EventVersion,
		OccurredAt:   time.Now().UTC(),
		Listing:      l,
	}
}
