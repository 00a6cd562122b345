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

func TestMapViewIndexesFollowListOrder(t *testing.T) {
	ctx := context.Background()
	seed := memory.SeedListings()

	// Strip the coordinates off the second listing; its pin disappears but
	// its position number must not be reused.
	seed[1].Location.Lat = nil
	seed[1].Location.Lng = nil

	uc := NewMapViewUseCase(memory.NewListingStorage(seed))

	pins, err := uc.Execute(ctx, domain.ListingFilters{}, 14)
	require.NoError(t, err)
	require.Len(t, pins, 5)

	assert.Equal(t, 1, pins[0].Index)
	assert.Equal(t, 3, pins[1].Index) // listing 2 was skipped
	assert.Equal(t, 6, pins[4].Index)
}

func TestMapViewPinsCarryProjection(t *testing.T) {
	ctx := context.Background()
	uc := NewMapViewUseCase(memory.NewListingStorage(memory.SeedListings()))

	pins, err := uc.Execute(ctx, domain.ListingFilters{}, 14)
	require.NoError(t, err)
	require.NotEmpty(t, pins)

	first := pins[0]
	assert.Equal(t, memory.SeedListings()[0].ID, first.ListingID)
	assert.Positive(t, first.PixelX)
	assert.Positive(t, first.PixelY)
	assert.Len(t, first.Cell, 6)
	assert.InDelta(t, -15.1217, first.Lat, 1e-9)
}

func TestMapViewAppliesFilters(t *testing.T) {
	ctx := context.Background()
	uc := NewMapViewUseCase(memory.NewListingStorage(memory.SeedListings()))

	status := domain.StatusReserved
	pins, err := uc.Execute(ctx, domain.ListingFilters{Status: &status}, 10)
	require.NoError(t, err)

	require.Len(t, pins, 1)
	assert.Equal(t, "Cobertura Duplex Premium", pins[0].Title)
	assert.Equal(t, 1, pins[0].Index)
}

func TestMapViewRejectsInvalidFilters(t *testing.T) {
	ctx := context.Background()
	uc := NewMapViewUseCase(memory.NewListingStorage(memory.SeedListings()))

	bad := math.NaN()
	_, err := uc.Execute(ctx, domain.ListingFilters{MinPrice: &bad}, 10)

	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestCompanyListingsBySlug(t *testing.T) {
	ctx := context.Background()
	uc := NewCompanyListingsUseCase(memory.NewListingStorage(memory.SeedListings()))

	got, err := uc.Execute(ctx, "grupo-incorporador-sc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Grupo Incorporador SC", got[0].Company)

	empty, err := uc.Execute(ctx, "nobody-here")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
