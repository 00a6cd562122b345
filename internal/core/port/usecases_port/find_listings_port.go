package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type FindListingsUseCasePort interface {
	Execute(ctx context.Context, filters domain.ListingFilters) ([]domain.Listing, error)
}
