package usecase

import (
	"context"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type AddListingUseCase struct {
	storage   port.ListingStoragePort
	publisher port.EventPublisherPort
}

func NewAddListingUseCase(storage port.ListingStoragePort, publisher port.EventPublisherPort) *AddListingUseCase {
	return &AddListingUseCase{storage: storage, publisher: publisher}
}

// Execute validates the input, assigns a fresh id and the creation time,
// stores the listing and emits a created event. Whatever id or timestamp
// the caller put on data is discarded.
func (uc *AddListingUseCase) Execute(ctx context.Context, data domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "AddListing",
	})

	if err := data.Validate(); err != nil {
		logger.Warn("Rejected invalid listing", port.Fields{"error": err.Error()})
		return nil, err
	}

	data.ID = uuid.NewString()
	data.CreatedAt = time.Now().UTC()

	if err := uc.storage.Add(ctx, data); err != nil {
		logger.Error("Failed to store listing", err, nil)
		return nil, err
	}

	if err := uc.publisher.Publish(ctx, domain.NewListingCreatedEvent(data)); err != nil {
		// The mutation already happened; a lost event must not undo it.
		logger.Error("Failed to publish listing-created event", err, port.Fields{"listing_id": data.ID})
	}

	logger.Info("Listing created", port.Fields{"listing_id": data.ID})
	return &data, nil
}
