package memory

import (
	"context"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreUnknownSessionIsEmpty(t *testing.T) {
	store := NewSessionStore()

	filters, err := store.Get(context.Background(), "nobody")

	require.NoError(t, err)
	assert.True(t, filters.IsEmpty())
}

func TestSessionStoreReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	min := 100.0
	city := "Mutum"
	require.NoError(t, store.Replace(ctx, "s1", domain.ListingFilters{MinPrice: &min, City: &city}))

	// A second replace drops constraints the new state does not carry.
	max := 500.0
	require.NoError(t, store.Replace(ctx, "s1", domain.ListingFilters{MaxPrice: &max}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got.MinPrice)
	assert.Nil(t, got.City)
	require.NotNil(t, got.MaxPrice)
	assert.Equal(t, 500.0, *got.MaxPrice)
}

func TestSessionStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	city := "Mutum"
	require.NoError(t, store.Replace(ctx, "s1", domain.ListingFilters{City: &city}))

	other, err := store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestSessionStoreClearField(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	min := 100.0
	city := "Mutum"
	require.NoError(t, store.Replace(ctx, "s1", domain.ListingFilters{MinPrice: &min, City: &city}))

	require.NoError(t, store.ClearField(ctx, "s1", domain.FilterMinPrice))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got.MinPrice)
	require.NotNil(t, got.City)
	assert.Equal(t, "Mutum", *got.City)
}

func TestSessionStoreClearUnknownField(t *testing.T) {
	store := NewSessionStore()

	err := store.ClearField(context.Background(), "s1", "bogus")

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}
