package usecase

import (
	"context"
	"math"
	"testing"

	"listing-service/internal/adapters/memory"
	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFiltersUC() (*SessionFiltersUseCase, *memory.SessionStore) {
	sessions := memory.NewSessionStore()
	storage := memory.NewListingStorage(memory.SeedListings())
	return NewSessionFiltersUseCase(sessions, storage), sessions
}

func TestSessionFiltersReplaceAndView(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionFiltersUC()

	deal := domain.DealRent
	require.NoError(t, uc.Replace(ctx, "s1", domain.ListingFilters{DealType: &deal}))

	view, err := uc.View(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "Apartamento Vista Vale", view[0].Title)

	// Another session still sees the unfiltered collection.
	other, err := uc.View(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, other, 6)
}

func TestSessionFiltersInvalidStateNeverInstalled(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionFiltersUC()

	min := 100.0
	require.NoError(t, uc.Replace(ctx, "s1", domain.ListingFilters{MinPrice: &min}))

	bad := math.NaN()
	err := uc.Replace(ctx, "s1", domain.ListingFilters{MinPrice: &bad})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	// Previous state survives the rejected replace.
	got, err := uc.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got.MinPrice)
	assert.Equal(t, 100.0, *got.MinPrice)
}

func TestSessionFiltersClearField(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionFiltersUC()

	deal := domain.DealSale
	bedrooms := 4
	require.NoError(t, uc.Replace(ctx, "s1", domain.ListingFilters{DealType: &deal, MinBedrooms: &bedrooms}))

	require.NoError(t, uc.ClearField(ctx, "s1", domain.FilterMinBedrooms))

	got, err := uc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got.MinBedrooms)
	require.NotNil(t, got.DealType)

	view, err := uc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, view, 5) // all sale listings again
}

func TestSessionFiltersClearUnknownField(t *testing.T) {
	uc, _ := newSessionFiltersUC()

	err := uc.ClearField(context.Background(), "s1", "bogus")

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestSessionFiltersDeliveryDateStoredButNotApplied(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSessionFiltersUC()

	deadline := memory.SeedListings()[0].CreatedAt // any date; semantics undefined
	require.NoError(t, uc.Replace(ctx, "s1", domain.ListingFilters{DeliveryBefore: &deadline}))

	got, err := uc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.NotNil(t, got.DeliveryBefore)

	view, err := uc.View(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, view, 6)
}
