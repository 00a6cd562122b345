package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type FindListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewFindListingsUseCase(storage port.ListingStoragePort) *FindListingsUseCase {
	return &FindListingsUseCase{storage: storage}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FindListings",
	})

	if err := filters.Validate(); err != nil {
		logger.Warn("Rejected invalid filters", port.Fields{"error": err.Error()})
		return nil, err
	}

	listings, err := uc.storage.Find(ctx, filters)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	logger.Debug("Use case finished", port.Fields{"matched": len(listings)})
	return listings, nil
}
