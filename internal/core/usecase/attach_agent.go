package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type AttachAgentUseCase struct {
	storage port.ListingStoragePort
}

func NewAttachAgentUseCase(storage port.ListingStoragePort) *AttachAgentUseCase {
	return &AttachAgentUseCase{storage: storage}
}

func (uc *AttachAgentUseCase) Execute(ctx context.Context, listingID string, agent domain.ListingAgent) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "AttachAgent",
		"listing_id": listingID,
		"agent_id":   agent.ID,
	})

	if agent.ID == "" || agent.Name == "" {
		err := domain.NewValidationError("agent", "id and name are required")
		logger.Warn("Rejected invalid agent", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.storage.AttachAgent(ctx, listingID, agent); err != nil {
		logger.Warn("Attach failed", port.Fields{"error": err.Error()})
		return err
	}

	logger.Info("Agent attached to listing", nil)
	return nil
}
