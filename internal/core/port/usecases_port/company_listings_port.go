package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// CompanyListingsUseCasePort projects the full collection down to one
// company, addressed by its slug.
type CompanyListingsUseCasePort interface {
	Execute(ctx context.Context, companySlug string) ([]domain.Listing, error)
}
