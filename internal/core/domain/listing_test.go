package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListing() Listing {
	return Listing{
		Title: "Test flat", Price: 100000,
		DealType: DealSale, ListingType: TypeApartment,
		Bedrooms: 2, Bathrooms: 1, Area: 60,
		Location: Location{Address: "Somewhere 1", City: "Mutum", State: "MT"},
		Company:  "Prime", Agent: "Ana",
		Status: StatusAvailable,
	}
}

func TestListingValidate(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Listing)
	}{
		{"empty title", func(l *Listing) { l.Title = "" }},
		{"zero price", func(l *Listing) { l.Price = 0 }},
		{"negative price", func(l *Listing) { l.Price = -1 }},
		{"bad deal type", func(l *Listing) { l.DealType = "lease" }},
		{"bad property type", func(l *Listing) { l.ListingType = "castle" }},
		{"negative bedrooms", func(l *Listing) { l.Bedrooms = -1 }},
		{"negative bathrooms", func(l *Listing) { l.Bathrooms = -1 }},
		{"zero area", func(l *Listing) { l.Area = 0 }},
		{"negative parking", func(l *Listing) { l.ParkingSpaces = iptr(-1) }},
		{"bad status", func(l *Listing) { l.Status = "pending" }},
		{"empty company", func(l *Listing) { l.Company = "" }},
		{"empty agent", func(l *Listing) { l.Agent = "" }},
		{"work progress above 100", func(l *Listing) { l.WorkProgress = iptr(101) }},
		{"negative work progress", func(l *Listing) { l.WorkProgress = iptr(-1) }},
	}

	assert.NoError(t, validListing().Validate())

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			l := validListing()
			tt.mutate(&l)

			err := l.Validate()

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestListingJSONOmitsAbsentOptionals(t *testing.T) {
	l := validListing()

	raw, err := json.Marshal(l)
	require.NoError(t, err)

	var asMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &asMap))

	// Absent optionals stay absent on the wire instead of becoming zero
	// values the filter engine could misread.
	assert.NotContains(t, asMap, "parkingSpaces")
	assert.NotContains(t, asMap, "workProgress")
	assert.NotContains(t, asMap, "deliveryDate")
}

func TestListingJSONRoundTrip(t *testing.T) {
	delivery := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	l := validListing()
	l.ID = "x1"
	l.ParkingSpaces = iptr(2)
	l.WorkProgress = iptr(85)
	l.DeliveryDate = &delivery
	l.Location.Lat = fptr(-15.12)
	l.Location.Lng = fptr(-58.0)
	l.CreatedAt = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	l.Agents = []ListingAgent{{ID: "2", Name: "Maria", Active: true}}

	raw, err := json.Marshal(l)
	require.NoError(t, err)

	var back Listing
	require.NoError(t, json.Unmarshal(raw, &back))

	assert.Equal(t, l, back)
}

func TestParkingSpacesOrZero(t *testing.T) {
	l := validListing()
	assert.Equal(t, 0, l.ParkingSpacesOrZero())

	l.ParkingSpaces = iptr(3)
	assert.Equal(t, 3, l.ParkingSpacesOrZero())
}

func TestHasCoordinates(t *testing.T) {
	l := validListing()
	assert.False(t, l.HasCoordinates())

	l.Location.Lat = fptr(1)
	assert.False(t, l.HasCoordinates())

	l.Location.Lng = fptr(2)
	assert.True(t, l.HasCoordinates())
}
