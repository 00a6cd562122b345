package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// ListingStoragePort is the outgoing contract for the listing collection.
// List and Find return snapshots in stable insertion order; mutating a
// returned slice never affects the backing collection.
type ListingStoragePort interface {
	// List returns every listing.
	List(ctx context.Context) ([]domain.Listing, error)

	// Find returns the listings matching the filter set, preserving the
	// collection order. The snapshot and the filter evaluation are atomic
	// with respect to concurrent mutations.
	Find(ctx context.Context, filters domain.ListingFilters) ([]domain.Listing, error)

	// GetByID returns domain.ErrListingNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// Add appends a fully populated listing (id and creation time already
	// assigned) to the collection.
	Add(ctx context.Context, listing domain.Listing) error

	// Update replaces every field of the stored listing except ID and
	// CreatedAt, keeping its position in the collection. Returns
	// domain.ErrListingNotFound for an unknown id.
	Update(ctx context.Context, listing domain.Listing) error

	// AttachAgent links an additional agent to a listing.
	AttachAgent(ctx context.Context, listingID string, agent domain.ListingAgent) error
}
