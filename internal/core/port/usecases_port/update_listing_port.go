package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// UpdateListingUseCasePort replaces every field of an existing listing
// except its id and original creation time.
type UpdateListingUseCasePort interface {
	Execute(ctx context.Context, id string, data domain.Listing) (*domain.Listing, error)
}
