package domain

import (
	"time"
)

// DealType is the transaction kind of a listing.
type DealType string

const (
	DealSale DealType = "sale"
	DealRent DealType = "rent"
)

// ListingType is the property kind of a listing.
type ListingType string

const (
	TypeApartment   ListingType = "apartment"
	TypeHouse       ListingType = "house"
	TypeLand        ListingType = "land"
	TypeCommercial  ListingType = "commercial"
	TypeSubdivision ListingType = "subdivision"
	TypeCondominium ListingType = "condominium"
)

// Status is the sales status of a listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
)

// Location describes where a listing is. Lat/Lng are optional: a listing
// without coordinates is valid but never shows up on the map view.
type Location struct {
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Neighborhood string   `json:"neighborhood"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// ListingAgent is an additional agent linked to a listing besides the
// responsible one.
type ListingAgent struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Active  bool   `json:"isActive"`
}

// Listing is the main real-estate entity. ID and CreatedAt are assigned at
// creation and never change afterwards; update operations replace every
// other field.
type Listing struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	DealType      DealType       `json:"type"`
	ListingType   ListingType    `json:"propertyType"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	Area          float64        `json:"area"`
	ParkingSpaces *int           `json:"parkingSpaces,omitempty"`
	Location      Location       `json:"location"`
	Images        []string       `json:"images"`
	FloorPlan     string         `json:"floorPlan,omitempty"`
	Features      []string       `json:"features"`
	Company       string         `json:"company"`
	Agent         string         `json:"agent"`
	Agents        []ListingAgent `json:"agents,omitempty"`
	Status        Status         `json:"status"`
	Highlighted   bool           `json:"isHighlighted"`
	WorkProgress  *int           `json:"workProgress,omitempty"`
	DeliveryDate  *time.Time     `json:"deliveryDate,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// ParkingSpacesOrZero returns the parking space count, treating an absent
// value as zero. This is the value the predicate engine compares against.
func (l Listing) ParkingSpacesOrZero() int {
	if l.ParkingSpaces == nil {
		return 0
	}
	return *l.ParkingSpaces
}

// HasCoordinates reports whether the listing can be projected on a map.
func (l Listing) HasCoordinates() bool {
	return l.Location.Lat != nil && l.Location.Lng != nil
}

func validDealType(t DealType) bool {
	return t == DealSale || t == DealRent
}

func validListingType(t ListingType) bool {
	switch t {
	case TypeApartment, TypeHouse, TypeLand, TypeCommercial, TypeSubdivision, TypeCondominium:
		return true
	}
	return false
}

func validStatus(s Status) bool {
	return s == StatusAvailable || s == StatusReserved || s == StatusSold
}

// Validate checks the field invariants of a listing. ID and CreatedAt are
// not checked here; they belong to the mutation operations.
func (l Listing) Validate() error {
	if l.Title == "" {
		return NewValidationError("title", "must not be empty")
	}
	if l.Price <= 0 {
		return NewValidationError("price", "must be positive")
	}
	if !validDealType(l.DealType) {
		return NewValidationError("type", "must be one of: sale, rent")
	}
	if !validListingType(l.ListingType) {
		return NewValidationError("propertyType", "unknown property type")
	}
	if l.Bedrooms < 0 {
		return NewValidationError("bedrooms", "must not be negative")
	}
	if l.Bathrooms < 0 {
		return NewValidationError("bathrooms", "must not be negative")
	}
	if l.Area <= 0 {
		return NewValidationError("area", "must be positive")
	}
	if l.ParkingSpaces != nil && *l.ParkingSpaces < 0 {
		return NewValidationError("parkingSpaces", "must not be negative")
	}
	if !validStatus(l.Status) {
		return NewValidationError("status", "must be one of: available, reserved, sold")
	}
	if l.Company == "" {
		return NewValidationError("company", "must not be empty")
	}
	if l.Agent == "" {
		return NewValidationError("agent", "must not be empty")
	}
	if l.WorkProgress != nil && (*l.WorkProgress < 0 || *l.WorkProgress > 100) {
		return NewValidationError("workProgress", "must be between 0 and 100")
	}
	return nil
}
