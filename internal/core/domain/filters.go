package domain

import (
	"fmt"
	"math"
	"time"
)

// FilterField names a single dimension of ListingFilters. The names match
// the JSON/query keys used by the REST layer.
type FilterField string

const (
	FilterDealType       FilterField = "type"
	FilterListingType    FilterField = "propertyType"
	FilterMinPrice       FilterField = "minPrice"
	FilterMaxPrice       FilterField = "maxPrice"
	FilterMinBedrooms    FilterField = "bedrooms"
	FilterCity           FilterField = "city"
	FilterMinArea        FilterField = "minArea"
	FilterMaxArea        FilterField = "maxArea"
	FilterStatus         FilterField = "status"
	FilterMinParking     FilterField = "parkingSpaces"
	FilterDeliveryBefore FilterField = "deliveryDate"
)

// ListingFilters is a sparse set of search constraints. A nil field means
// "no constraint on that dimension"; every present constraint must hold for
// a listing to match (logical AND).
type ListingFilters struct {
	// DealType and ListingType are exact matches.
	DealType    *DealType    `json:"type,omitempty"`
	ListingType *ListingType `json:"propertyType,omitempty"`

	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MinBedrooms is a lower bound ("N+"), not an exact count.
	MinBedrooms *int `json:"bedrooms,omitempty"`

	// City is a case-insensitive substring match against the listing city.
	City *string `json:"city,omitempty"`

	MinArea *float64 `json:"minArea,omitempty"`
	MaxArea *float64 `json:"maxArea,omitempty"`

	Status *Status `json:"status,omitempty"`

	// MinParkingSpaces compares against the listing's parking count with
	// absence treated as zero.
	MinParkingSpaces *int `json:"parkingSpaces,omitempty"`

	// DeliveryBefore is accepted and stored but not applied to listings:
	// the product has not defined matching semantics for delivery dates,
	// so the predicate engine deliberately ignores it.
	DeliveryBefore *time.Time `json:"deliveryDate,omitempty"`
}

// IsEmpty reports whether no constraint is set.
func (f ListingFilters) IsEmpty() bool {
	return f.DealType == nil && f.ListingType == nil &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinBedrooms == nil && f.City == nil &&
		f.MinArea == nil && f.MaxArea == nil &&
		f.Status == nil && f.MinParkingSpaces == nil &&
		f.DeliveryBefore == nil
}

func validBound(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return NewValidationError(field, "must be a finite number")
	}
	if *v < 0 {
		return NewValidationError(field, "must not be negative")
	}
	return nil
}

// Validate rejects malformed filter values before they become state. The
// predicate engine itself degrades safely on bad numbers (a NaN bound never
// matches), but callers replacing session state get a loud error instead.
func (f ListingFilters) Validate() error {
	if f.DealType != nil && !validDealType(*f.DealType) {
		return NewValidationError(string(FilterDealType), "must be one of: sale, rent")
	}
	if f.ListingType != nil && !validListingType(*f.ListingType) {
		return NewValidationError(string(FilterListingType), "unknown property type")
	}
	if err := validBound(string(FilterMinPrice), f.MinPrice); err != nil {
		return err
	}
	if err := validBound(string(FilterMaxPrice), f.MaxPrice); err != nil {
		return err
	}
	if f.MinBedrooms != nil && *f.MinBedrooms < 0 {
		return NewValidationError(string(FilterMinBedrooms), "must not be negative")
	}
	if err := validBound(string(FilterMinArea), f.MinArea); err != nil {
		return err
	}
	if err := validBound(string(FilterMaxArea), f.MaxArea); err != nil {
		return err
	}
	if f.Status != nil && !validStatus(*f.Status) {
		return NewValidationError(string(FilterStatus), "must be one of: available, reserved, sold")
	}
	if f.MinParkingSpaces != nil && *f.MinParkingSpaces < 0 {
		return NewValidationError(string(FilterMinParking), "must not be negative")
	}
	return nil
}

// Clear removes a single constraint, leaving the rest of the filter state
// untouched. Clearing means true absence (the field becomes nil), never a
// sentinel value the predicates would still see.
func (f *ListingFilters) Clear(field FilterField) error {
	switch field {
	case FilterDealType:
		f.DealType = nil
	case FilterListingType:
		f.ListingType = nil
	case FilterMinPrice:
		f.MinPrice = nil
	case FilterMaxPrice:
		f.MaxPrice = nil
	case FilterMinBedrooms:
		f.MinBedrooms = nil
	case FilterCity:
		f.City = nil
	case FilterMinArea:
		f.MinArea = nil
	case FilterMaxArea:
		f.MaxArea = nil
	case FilterStatus:
		f.Status = nil
	case FilterMinParking:
		f.MinParkingSpaces = nil
	case FilterDeliveryBefore:
		f.DeliveryBefore = nil
	default:
		return NewValidationError("field", fmt.Sprintf("unknown filter field %q", field))
	}
	return nil
}
