package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type MapViewUseCasePort interface {
	Execute(ctx context.Context, filters domain.ListingFilters, zoom int) ([]domain.MapPin, error)
}
