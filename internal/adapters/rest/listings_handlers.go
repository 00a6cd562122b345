package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingsHandler struct {
	findListingsUC  usecases_port.FindListingsUseCasePort
	getListingUC    usecases_port.GetListingUseCasePort
	addListingUC    usecases_port.AddListingUseCasePort
	updateListingUC usecases_port.UpdateListingUseCasePort
	attachAgentUC   usecases_port.AttachAgentUseCasePort
}

func NewListingsHandler(
	findListingsUC usecases_port.FindListingsUseCasePort,
	getListingUC usecases_port.GetListingUseCasePort,
	addListingUC usecases_port.AddListingUseCasePort,
	updateListingUC usecases_port.UpdateListingUseCasePort,
	attachAgentUC usecases_port.AttachAgentUseCasePort) *ListingsHandler {
	return &ListingsHandler{
		findListingsUC:  findListingsUC,
		getListingUC:    getListingUC,
		addListingUC:    addListingUC,
		updateListingUC: updateListingUC,
		attachAgentUC:   attachAgentUC,
	}
}

// FindListings handles GET /api/v1/listings
func (h *ListingsHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	filters, err := parseListingFilters(r.URL.Query())
	if err != nil {
		logger.Warn("Invalid filter parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "FindListings",
		"filters": filters,
	})
	handlerLogger.Debug("Processing request to find listings", nil)

	listings, err := h.findListingsUC.Execute(r.Context(), filters)
	if err != nil {
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	handlerLogger.Info("Successfully found listings", port.Fields{
		"total_found": len(listings),
	})
	RespondWithJSON(w, http.StatusOK, listings)
}

// GetListing handles GET /api/v1/listings/{listingID}
func (h *ListingsHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID := chi.URLParam(r, "listingID")
	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "GetListing",
		"listing_id": listingID,
	})

	listing, err := h.getListingUC.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, listing)
}

// AddListing handles POST /api/v1/listings
func (h *ListingsHandler) AddListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var data domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "AddListing",
		"title":   data.Title,
	})
	handlerLogger.Debug("Processing request to add listing", nil)

	created, err := h.addListingUC.Execute(r.Context(), data)
	if err != nil {
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add listing")
		return
	}

	handlerLogger.Info("Listing created", port.Fields{"listing_id": created.ID})
	RespondWithJSON(w, http.StatusCreated, created)
}

// UpdateListing handles PUT /api/v1/listings/{listingID}
func (h *ListingsHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID := chi.URLParam(r, "listingID")

	var data domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "UpdateListing",
		"listing_id": listingID,
	})
	handlerLogger.Debug("Processing request to update listing", nil)

	updated, err := h.updateListingUC.Execute(r.Context(), listingID, data)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update listing")
		return
	}

	handlerLogger.Info("Listing updated", nil)
	RespondWithJSON(w, http.StatusOK, updated)
}

// AttachAgent handles POST /api/v1/listings/{listingID}/agents
func (h *ListingsHandler) AttachAgent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	listingID := chi.URLParam(r, "listingID")

	var agent domain.ListingAgent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":    "AttachAgent",
		"listing_id": listingID,
		"agent_id":   agent.ID,
	})

	if err := h.attachAgentUC.Execute(r.Context(), listingID, agent); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to attach agent")
		return
	}

	handlerLogger.Info("Agent attached to listing", nil)
	w.WriteHeader(http.StatusNoContent)
}
