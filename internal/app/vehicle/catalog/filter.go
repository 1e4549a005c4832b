// Package catalog holds the pure listing pipeline and similarity rules.
// Nothing here touches a store; every function returns new slices and
// leaves its input untouched.
package catalog

import (
	"slices"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// Filter returns the records that satisfy every dimension of c, in input order.
// An inconsistent range (min > max) matches nothing.
func Filter(records []domain.VehicleSummary, c domain.FilterCriteria) []domain.VehicleSummary {
	out := make([]domain.VehicleSummary, 0, len(records))
	for _, v := range records {
		if Matches(v, c) {
			out = append(out, v)
		}
	}
	return out
}

// Matches reports whether a single record satisfies c.
func Matches(v domain.VehicleSummary, c domain.FilterCriteria) bool {
	if len(c.Brands) > 0 && !slices.Contains(c.Brands, v.Brand) {
		return false
	}
	if len(c.Models) > 0 && !slices.Contains(c.Models, v.Model) {
		return false
	}
	if len(c.Transmissions) > 0 {
		if !v.HasTransmission() || !slices.Contains(c.Transmissions, *v.Transmission) {
			return false
		}
	}

	if c.YearMin != nil && v.Year < *c.YearMin {
		return false
	}
	if c.YearMax != nil && v.Year > *c.YearMax {
		return false
	}
	if c.PriceMin != nil && v.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && v.Price > *c.PriceMax {
		return false
	}
	return true
}
