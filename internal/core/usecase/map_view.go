package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/geo"
)

// MapViewUseCase projects the filtered collection into map pins. Every
// matching listing keeps its 1-based position index, including ones
// dropped later for missing coordinates, so badge numbers stay aligned
// with the sidebar list.
type MapViewUseCase struct {
	storage port.ListingStoragePort
}

func NewMapViewUseCase(storage port.ListingStoragePort) *MapViewUseCase {
	return &MapViewUseCase{storage: storage}
}

func (uc *MapViewUseCase) Execute(ctx context.Context, filters domain.ListingFilters, zoom int) ([]domain.MapPin, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "MapView",
		"zoom":     zoom,
	})

	if err := filters.Validate(); err != nil {
		logger.Warn("Rejected invalid filters", port.Fields{"error": err.Error()})
		return nil, err
	}
	zoom = geo.ClampZoom(zoom)

	listings, err := uc.storage.Find(ctx, filters)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	pins := make([]domain.MapPin, 0, len(listings))
	skipped := 0
	for i, l := range listings {
		if !l.HasCoordinates() {
			skipped++
			continue
		}
		lat, lng := *l.Location.Lat, *l.Location.Lng
		x, y := geo.Project(lat, lng, zoom)
		pins = append(pins, domain.MapPin{
			Index:     i + 1,
			ListingID: l.ID,
			Title:     l.Title,
			Price:     l.Price,
			Status:    l.Status,
			Lat:       lat,
			Lng:       lng,
			PixelX:    x,
			PixelY:    y,
			Cell:      geo.Cell(lat, lng, zoom),
		})
	}

	logger.Debug("Computed map view", port.Fields{
		"pins":                len(pins),
		"without_coordinates": skipped,
	})
	return pins, nil
}
