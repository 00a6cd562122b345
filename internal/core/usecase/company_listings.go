package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// CompanyListingsUseCase projects the full collection by company slug.
// Unlike the session view this always reads the unfiltered collection.
type CompanyListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewCompanyListingsUseCase(storage port.ListingStoragePort) *CompanyListingsUseCase {
	return &CompanyListingsUseCase{storage: storage}
}

func (uc *CompanyListingsUseCase) Execute(ctx context.Context, companySlug string) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":     "CompanyListings",
		"company_slug": companySlug,
	})

	all, err := uc.storage.List(ctx)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	matched := domain.FilterByCompanySlug(all, companySlug)
	logger.Debug("Computed company view", port.Fields{"matched": len(matched)})
	return matched, nil
}
