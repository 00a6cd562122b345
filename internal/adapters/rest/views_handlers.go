package rest

import (
	"net/http"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"listing-service/internal/geo"

	"github.com/go-chi/chi/v5"
)

const defaultMapZoom = 14

type ViewsHandler struct {
	mapViewUC         usecases_port.MapViewUseCasePort
	companyListingsUC usecases_port.CompanyListingsUseCasePort
}

func NewViewsHandler(
	mapViewUC usecases_port.MapViewUseCasePort,
	companyListingsUC usecases_port.CompanyListingsUseCasePort) *ViewsHandler {
	return &ViewsHandler{
		mapViewUC:         mapViewUC,
		companyListingsUC: companyListingsUC,
	}
}

// MapPins handles GET /api/v1/map/pins
func (h *ViewsHandler) MapPins(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	zoom := defaultMapZoom
	if raw := query.Get("zoom"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "parameter \"zoom\" must be an integer")
			return
		}
		zoom = v
	}
	zoom = geo.ClampZoom(zoom)

	filters, err := parseListingFilters(query)
	if err != nil {
		logger.Warn("Invalid filter parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "MapPins",
		"zoom":    zoom,
	})

	pins, err := h.mapViewUC.Execute(r.Context(), filters, zoom)
	if err != nil {
		if domain.IsValidationError(err) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to build map pins")
		return
	}

	handlerLogger.Debug("Map pins built", port.Fields{"pin_count": len(pins)})
	RespondWithJSON(w, http.StatusOK, pins)
}

// CompanyListings handles GET /api/v1/companies/{companySlug}/listings
func (h *ViewsHandler) CompanyListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	companySlug := chi.URLParam(r, "companySlug")
	handlerLogger := logger.WithFields(port.Fields{
		"handler":      "CompanyListings",
		"company_slug": companySlug,
	})

	listings, err := h.companyListingsUC.Execute(r.Context(), companySlug)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve company listings")
		return
	}

	handlerLogger.Info("Company listings retrieved", port.Fields{
		"total_found": len(listings),
	})
	RespondWithJSON(w, http.StatusOK, listings)
}
