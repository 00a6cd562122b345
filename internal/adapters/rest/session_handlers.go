package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// SessionHandler exposes the per-session filter state. Sessions are
// addressed by the X-Session-ID header; the service never invents one.
type SessionHandler struct {
	sessionFiltersUC usecases_port.SessionFiltersUseCasePort
}

func NewSessionHandler(sessionFiltersUC usecases_port.SessionFiltersUseCasePort) *SessionHandler {
	return &SessionHandler{sessionFiltersUC: sessionFiltersUC}
}

func sessionIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		WriteJSONError(w, http.StatusBadRequest, "X-Session-ID header is missing")
		return "", false
	}
	return sessionID, true
}

// GetFilters handles GET /api/v1/session/filters
func (h *SessionHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	filters, err := h.sessionFiltersUC.Get(r.Context(), sessionID)
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Failed to load session filters", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load filters")
		return
	}

	RespondWithJSON(w, http.StatusOK, filters)
}

// ReplaceFilters handles PUT /api/v1/session/filters
func (h *SessionHandler) ReplaceFilters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	var filters domain.ListingFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.sessionFiltersUC.Replace(r.Context(), sessionID, filters); err != nil {
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to replace session filters", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to replace filters")
		return
	}

	logger.Info("Session filters replaced", port.Fields{"session_id": sessionID})
	RespondWithJSON(w, http.StatusOK, filters)
}

// ClearFilter handles DELETE /api/v1/session/filters/{field}
func (h *SessionHandler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	field := domain.FilterField(chi.URLParam(r, "field"))

	if err := h.sessionFiltersUC.ClearField(r.Context(), sessionID, field); err != nil {
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to clear session filter", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to clear filter")
		return
	}

	logger.Info("Session filter cleared", port.Fields{
		"session_id": sessionID,
		"field":      string(field),
	})
	w.WriteHeader(http.StatusNoContent)
}

// SessionListings handles GET /api/v1/session/listings
func (h *SessionHandler) SessionListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	sessionID, ok := sessionIDFromRequest(w, r)
	if !ok {
		return
	}

	listings, err := h.sessionFiltersUC.View(r.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to compute session view", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	logger.Debug("Session view computed", port.Fields{
		"session_id":  sessionID,
		"total_found": len(listings),
	})
	RespondWithJSON(w, http.StatusOK, listings)
}
