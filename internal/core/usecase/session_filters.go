package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// SessionFiltersUseCase owns per-session filter state. State is replaced
// wholesale and validated before the replace, so invalid filters can never
// be observed by a reader.
type SessionFiltersUseCase struct {
	sessions port.SessionStorePort
	storage  port.ListingStoragePort
}

func NewSessionFiltersUseCase(sessions port.SessionStorePort, storage port.ListingStoragePort) *SessionFiltersUseCase {
	return &SessionFiltersUseCase{sessions: sessions, storage: storage}
}

func (uc *SessionFiltersUseCase) Get(ctx context.Context, sessionID string) (domain.ListingFilters, error) {
	return uc.sessions.Get(ctx, sessionID)
}

func (uc *SessionFiltersUseCase) Replace(ctx context.Context, sessionID string, next domain.ListingFilters) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "SessionFilters.Replace",
		"session_id": sessionID,
	})

	if err := next.Validate(); err != nil {
		logger.Warn("Rejected invalid filter state", port.Fields{"error": err.Error()})
		return err
	}
	if err := uc.sessions.Replace(ctx, sessionID, next); err != nil {
		logger.Error("Failed to replace filter state", err, nil)
		return err
	}
	logger.Debug("Filter state replaced", nil)
	return nil
}

func (uc *SessionFiltersUseCase) ClearField(ctx context.Context, sessionID string, field domain.FilterField) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "SessionFilters.ClearField",
		"session_id": sessionID,
		"field":      string(field),
	})

	if err := uc.sessions.ClearField(ctx, sessionID, field); err != nil {
		logger.Warn("Failed to clear filter field", port.Fields{"error": err.Error()})
		return err
	}
	return nil
}

// View recomputes the filtered collection for the session. The storage
// snapshot is taken after the filters are read, and both inputs are
// immutable values, so the result is always a consistent pair.
func (uc *SessionFiltersUseCase) View(ctx context.Context, sessionID string) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "SessionFilters.View",
		"session_id": sessionID,
	})

	filters, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	listings, err := uc.storage.Find(ctx, filters)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	logger.Debug("Computed session view", port.Fields{"matched": len(listings)})
	return listings, nil
}
