package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type AttachAgentUseCasePort interface {
	Execute(ctx context.Context, listingID string, agent domain.ListingAgent) error
}
