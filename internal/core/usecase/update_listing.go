package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type UpdateListingUseCase struct {
	storage   port.ListingStoragePort
	publisher port.EventPublisherPort
}

func NewUpdateListingUseCase(storage port.ListingStoragePort, publisher port.EventPublisherPort) *UpdateListingUseCase {
	return &UpdateListingUseCase{storage: storage, publisher: publisher}
}

// Execute replaces every field of the stored listing except its id and
// original creation time. An unknown id is an error, not a no-op.
func (uc *UpdateListingUseCase) Execute(ctx context.Context, id string, data domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id,
	})

	if err := data.Validate(); err != nil {
		logger.Warn("Rejected invalid listing", port.Fields{"error": err.Error()})
		return nil, err
	}

	data.ID = id
	if err := uc.storage.Update(ctx, data); err != nil {
		logger.Warn("Update failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	updated, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		logger.Error("Failed to read back updated listing", err, nil)
		return nil, err
	}

	if err := uc.publisher.Publish(ctx, domain.NewListingUpdatedEvent(*updated)); err != nil {
		logger.Error("Failed to publish listing-updated event", err, nil)
	}

	logger.Info("Listing updated", nil)
	return updated, nil
}
