package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// SessionStorePort holds the current filter state of each session. State is
// replaced wholesale; partial updates are the caller's job (read, modify,
// replace). A session that was never written reads as empty filters.
type SessionStorePort interface {
	Get(ctx context.Context, sessionID string) (domain.ListingFilters, error)

	// Replace installs next as the complete new filter state.
	Replace(ctx context.Context, sessionID string, next domain.ListingFilters) error

	// ClearField removes a single constraint from the session's state.
	ClearField(ctx context.Context, sessionID string, field domain.FilterField) error
}
