package rest

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"listing-service/internal/core/domain"
)

func parseString(query url.Values, key string) *string {
	if v := query.Get(key); v != "" {
		return &v
	}
	return nil
}

func parseFloat(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be a number", key)
	}
	return &v, nil
}

func parseInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be an integer", key)
	}
	return &v, nil
}

func parseDate(query url.Values, key string) (*time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		v, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be an RFC 3339 date", key)
	}
	return &v, nil
}

// parseListingFilters builds a filter set from query parameters. Keys match
// the JSON field names of ListingFilters. Malformed values are rejected with
// an error rather than silently dropped.
func parseListingFilters(query url.Values) (domain.ListingFilters, error) {
	var filters domain.ListingFilters
	var err error

	if v := parseString(query, string(domain.FilterDealType)); v != nil {
		dt := domain.DealType(*v)
		filters.DealType = &dt
	}
	if v := parseString(query, string(domain.FilterListingType)); v != nil {
		lt := domain.ListingType(*v)
		filters.ListingType = &lt
	}
	if filters.MinPrice, err = parseFloat(query, string(domain.FilterMinPrice)); err != nil {
		return domain.ListingFilters{}, err
	}
	if filters.MaxPrice, err = parseFloat(query, string(domain.FilterMaxPrice)); err != nil {
		return domain.ListingFilters{}, err
	}
	if filters.MinBedrooms, err = parseInt(query, string(domain.FilterMinBedrooms)); err != nil {
		return domain.ListingFilters{}, err
	}
	filters.City = parseString(query, string(domain.FilterCity))
	if filters.MinArea, err = parseFloat(query, string(domain.FilterMinArea)); err != nil {
		return domain.ListingFilters{}, err
	}
	if filters.MaxArea, err = parseFloat(query, string(domain.FilterMaxArea)); err != nil {
		return domain.ListingFilters{}, err
	}
	if v := parseString(query, string(domain.FilterStatus)); v != nil {
		st := domain.Status(*v)
		filters.Status = &st
	}
	if filters.MinParkingSpaces, err = parseInt(query, string(domain.FilterMinParking)); err != nil {
		return domain.ListingFilters{}, err
	}
	if filters.DeliveryBefore, err = parseDate(query, string(domain.FilterDeliveryBefore)); err != nil {
		return domain.ListingFilters{}, err
	}

	return filters, nil
}
