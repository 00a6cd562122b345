package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// containsFold reports whether s contains substr, ignoring case. A Caser
// is stateful, so each call gets its own.
func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// MatchesFilters reports whether a listing satisfies every constraint
// present in the filter set. An empty filter set matches everything.
func MatchesFilters(l Listing, f ListingFilters) bool {
	if f.DealType != nil && l.DealType != *f.DealType {
		return false
	}
	if f.ListingType != nil && l.ListingType != *f.ListingType {
		return false
	}
	if f.MinPrice != nil && !(l.Price >= *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !(l.Price <= *f.MaxPrice) {
		return false
	}
	if f.MinBedrooms != nil && l.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.City != nil && !containsFold(l.Location.City, *f.City) {
		return false
	}
	if f.MinArea != nil && !(l.Area >= *f.MinArea) {
		return false
	}
	if f.MaxArea != nil && !(l.Area <= *f.MaxArea) {
		return false
	}
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	if f.MinParkingSpaces != nil && l.ParkingSpacesOrZero() < *f.MinParkingSpaces {
		return false
	}
	// DeliveryBefore is intentionally not evaluated; see ListingFilters.
	return true
}

// filterListings is the single matching path every projection goes through:
// a stable, order-preserving scan. The result is always a fresh slice.
func filterListings(listings []Listing, keep func(Listing) bool) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// ApplyFilters returns the subsequence of listings matching the filter set,
// in the original order.
func ApplyFilters(listings []Listing, f ListingFilters) []Listing {
	return filterListings(listings, func(l Listing) bool {
		return MatchesFilters(l, f)
	})
}

// FilterByCompanySlug projects the collection down to the listings whose
// company name slugifies to the given slug.
func FilterByCompanySlug(listings []Listing, slug string) []Listing {
	return filterListings(listings, func(l Listing) bool {
		return CompanySlug(l.Company) == slug
	})
}
