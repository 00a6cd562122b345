package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// AddListingUseCasePort creates a listing from input data (id and creation
// time not yet assigned) and returns the stored entity.
type AddListingUseCasePort interface {
	Execute(ctx context.Context, data domain.Listing) (*domain.Listing, error)
}
