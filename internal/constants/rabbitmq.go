package constants

// Exchange names
const (
	ListingEventsExchange = "listing_events"
)

// Routing keys
const (
	RoutingKeyListingCreated = "listing.created"
	RoutingKeyListingUpdated = "listing.updated"
)
