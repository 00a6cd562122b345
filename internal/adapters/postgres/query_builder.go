package postgres

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"
)

// buildFilterWhere renders a filter set into a WHERE clause plus its
// positional arguments. Semantics mirror domain.MatchesFilters exactly so
// both storage backends filter the same way; the deliveryDate key is not
// rendered for the same reason the engine ignores it.
func buildFilterWhere(f domain.ListingFilters) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.DealType != nil {
		add("deal_type = $%d", string(*f.DealType))
	}
	if f.ListingType != nil {
		add("listing_type = $%d", string(*f.ListingType))
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}
	if f.MinBedrooms != nil {
		add("bedrooms >= $%d", *f.MinBedrooms)
	}
	if f.City != nil {
		add("city ILIKE $%d", "%"+escapeLike(*f.City)+"%")
	}
	if f.MinArea != nil {
		add("area >= $%d", *f.MinArea)
	}
	if f.MaxArea != nil {
		add("area <= $%d", *f.MaxArea)
	}
	if f.Status != nil {
		add("status = $%d", string(*f.Status))
	}
	if f.MinParkingSpaces != nil {
		add("COALESCE(parking_spaces, 0) >= $%d", *f.MinParkingSpaces)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
