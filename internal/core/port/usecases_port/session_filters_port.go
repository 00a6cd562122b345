package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// SessionFiltersUseCasePort owns per-session filter state and the derived
// filtered view.
type SessionFiltersUseCasePort interface {
	Get(ctx context.Context, sessionID string) (domain.ListingFilters, error)

	// Replace installs a complete new filter state after validating it;
	// invalid filters never become state.
	Replace(ctx context.Context, sessionID string, next domain.ListingFilters) error

	ClearField(ctx context.Context, sessionID string, field domain.FilterField) error

	// View returns the listings matching the session's current filters,
	// computed against a collection snapshot consistent with those filters.
	View(ctx context.Context, sessionID string) ([]domain.Listing, error)
}
