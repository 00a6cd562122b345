package contracts

import (
	"encoding/json"
	"testing"

	"listing-service/internal/adapters/memory"
	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalEvent(t *testing.T, event domain.ListingEvent) []byte {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestValidateListingCreatedEvent(t *testing.T) {
	event := domain.NewListingCreatedEvent(memory.SeedListings()[0])

	err := ValidateEvent(event.EventType, event.EventVersion, marshalEvent(t, event))

	assert.NoError(t, err)
}

func TestValidateListingUpdatedEvent(t *testing.T) {
	event := domain.NewListingUpdatedEvent(memory.SeedListings()[2])

	err := ValidateEvent(event.EventType, event.EventVersion, marshalEvent(t, event))

	assert.NoError(t, err)
}

func TestValidateEventUnknownVersion(t *testing.T) {
	event := domain.NewListingCreatedEvent(memory.SeedListings()[0])

	err := ValidateEvent(event.EventType, "9.0.0", marshalEvent(t, event))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateEventRejectsInvalidPayload(t *testing.T) {
	listing := memory.SeedListings()[0]
	listing.Title = "" // violates minLength
	event := domain.NewListingCreatedEvent(listing)

	err := ValidateEvent(event.EventType, event.EventVersion, marshalEvent(t, event))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateEventRejectsWrongEventType(t *testing.T) {
	event := domain.NewListingCreatedEvent(memory.SeedListings()[0])
	event.EventType = domain.EventListingUpdated // mismatch with the created schema

	// Validated against the created schema explicitly.
	err := ValidateEvent(domain.EventListingCreated, domain.EventVersion, marshalEvent(t, event))

	require.Error(t, err)
}

func TestValidateEventRejectsMalformedBody(t *testing.T) {
	err := ValidateEvent(domain.EventListingCreated, domain.EventVersion, []byte("{not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid JSON")
}

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "ListingCreatedEvent/1.0.0", generateKeyFromPath("events/listing-created/v1.json"))
	assert.Equal(t, "ListingUpdatedEvent/1.0.0", generateKeyFromPath("events/listing-updated/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("events/broken.json"))
}
