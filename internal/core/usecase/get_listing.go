package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetListingUseCase struct {
	storage port.ListingStoragePort
}

func NewGetListingUseCase(storage port.ListingStoragePort) *GetListingUseCase {
	return &GetListingUseCase{storage: storage}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, id string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "GetListing",
		"listing_id": id,
	})

	listing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		logger.Debug("Lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}
	return listing, nil
}
