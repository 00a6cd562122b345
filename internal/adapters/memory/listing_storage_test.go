package memory

import (
	"context"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStorage() *ListingStorage {
	return NewListingStorage(SeedListings())
}

func strPtr(v string) *string { return &v }

func TestFindOnSeedData(t *testing.T) {
	ctx := context.Background()
	storage := newSeededStorage()

	t.Run("no filters returns everything in order", func(t *testing.T) {
		got, err := storage.Find(ctx, domain.ListingFilters{})
		require.NoError(t, err)
		require.Len(t, got, 6)
		assert.Equal(t, "Residencial Águas Claras", got[0].Title)
		assert.Equal(t, "Cobertura Duplex Premium", got[5].Title)
	})

	t.Run("status available", func(t *testing.T) {
		status := domain.StatusAvailable
		got, err := storage.Find(ctx, domain.ListingFilters{Status: &status})
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("rent deal type", func(t *testing.T) {
		deal := domain.DealRent
		got, err := storage.Find(ctx, domain.ListingFilters{DealType: &deal})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Apartamento Vista Vale", got[0].Title)
	})

	t.Run("high min price", func(t *testing.T) {
		min := 900000.0
		got, err := storage.Find(ctx, domain.ListingFilters{MinPrice: &min})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Cobertura Duplex Premium", got[0].Title)
	})

	t.Run("three bedrooms means three or more", func(t *testing.T) {
		bedrooms := 3
		got, err := storage.Find(ctx, domain.ListingFilters{MinBedrooms: &bedrooms})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("city substring", func(t *testing.T) {
		got, err := storage.Find(ctx, domain.ListingFilters{City: strPtr("mut")})
		require.NoError(t, err)
		assert.Len(t, got, 6)

		got, err = storage.Find(ctx, domain.ListingFilters{City: strPtr("nowhere")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestAddThenGetByID(t *testing.T) {
	ctx := context.Background()
	storage := NewListingStorage(nil)

	listing := domain.Listing{
		ID: "new-1", Title: "Fresh", Price: 1000,
		DealType: domain.DealRent, ListingType: domain.TypeApartment,
		Bedrooms: 1, Bathrooms: 1, Area: 40,
		Location: domain.Location{City: "Mutum", State: "MT"},
		Company:  "Prime", Agent: "Ana",
		Status:   domain.StatusAvailable,
		Images:   []string{"a.jpg"},
		Features: []string{"Furnished"},
	}

	require.NoError(t, storage.Add(ctx, listing))

	got, err := storage.GetByID(ctx, "new-1")
	require.NoError(t, err)
	assert.Equal(t, listing, *got)
}

func TestAddDuplicateID(t *testing.T) {
	ctx := context.Background()
	storage := newSeededStorage()

	err := storage.Add(ctx, SeedListings()[0])

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestGetByIDMissing(t *testing.T) {
	storage := newSeededStorage()

	_, err := storage.GetByID(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestUpdatePreservesCreatedAtAndPosition(t *testing.T) {
	ctx := context.Background()
	storage := newSeededStorage()
	seed := SeedListings()

	original, err := storage.GetByID(ctx, seed[1].ID)
	require.NoError(t, err)

	changed := *original
	changed.Title = "Renamed"
	changed.Price = 999
	changed.CreatedAt = changed.CreatedAt.AddDate(1, 0, 0) // must be discarded

	require.NoError(t, storage.Update(ctx, changed))

	got, err := storage.GetByID(ctx, seed[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 999.0, got.Price)
	assert.Equal(t, original.CreatedAt, got.CreatedAt)

	// Position in the collection is unchanged.
	all, err := storage.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed[1].ID, all[1].ID)
}

func TestUpdateMissingID(t *testing.T) {
	storage := newSeededStorage()

	listing := SeedListings()[0]
	listing.ID = "no-such-id"

	err := storage.Update(context.Background(), listing)

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestAttachAgent(t *testing.T) {
	ctx := context.Background()
	storage := newSeededStorage()
	seed := SeedListings()

	agent := domain.ListingAgent{ID: "9", Name: "New Agent", Active: true}
	require.NoError(t, storage.AttachAgent(ctx, seed[0].ID, agent))

	got, err := storage.GetByID(ctx, seed[0].ID)
	require.NoError(t, err)
	require.Len(t, got.Agents, 3)
	assert.Equal(t, "New Agent", got.Agents[2].Name)

	err = storage.AttachAgent(ctx, "no-such-id", agent)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestReadsReturnDetachedCopies(t *testing.T) {
	ctx := context.Background()
	storage := newSeededStorage()
	seed := SeedListings()

	got, err := storage.GetByID(ctx, seed[0].ID)
	require.NoError(t, err)

	got.Title = "mutated"
	got.Images[0] = "mutated.jpg"
	*got.ParkingSpaces = 99

	fresh, err := storage.GetByID(ctx, seed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seed[0].Title, fresh.Title)
	assert.Equal(t, seed[0].Images[0], fresh.Images[0])
	assert.Equal(t, *seed[0].ParkingSpaces, *fresh.ParkingSpaces)
}
