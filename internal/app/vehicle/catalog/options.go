package catalog

import (
	"cmp"
	"slices"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// Options derives the distinct filterable values present in records.
// Brands and models ascend, years descend, and transmissions keep the
// order they were first seen in.
func Options(records []domain.VehicleSummary) domain.FilterOptions {
	brands := map[string]struct{}{}
	models := map[string]struct{}{}
	years := map[int]struct{}{}
	seenTransmission := map[domain.Transmission]struct{}{}
	byBrand := map[string]map[string]struct{}{}

	opts := domain.FilterOptions{
		Transmissions: []domain.Transmission{},
		ModelsByBrand: map[string][]string{},
	}

	for _, v := range records {
		brands[v.Brand] = struct{}{}
		models[v.Model] = struct{}{}
		years[v.Year] = struct{}{}

		if v.HasTransmission() {
			if _, ok := seenTransmission[*v.Transmission]; !ok {
				seenTransmission[*v.Transmission] = struct{}{}
				opts.Transmissions = append(opts.Transmissions, *v.Transmission)
			}
		}

		set, ok := byBrand[v.Brand]
		if !ok {
			set = map[string]struct{}{}
			byBrand[v.Brand] = set
		}
		set[v.Model] = struct{}{}
	}

	opts.Brands = sortedKeys(brands, cmp.Compare[string])
	opts.Models = sortedKeys(models, cmp.Compare[string])
	opts.Years = sortedKeys(years, func(a, b int) int { return cmp.Compare(b, a) })
	for brand, set := range byBrand {
		opts.ModelsByBrand[brand] = sortedKeys(set, cmp.Compare[string])
	}
	return opts
}

func sortedKeys[K comparable](m map[K]struct{}, compare func(a, b K) int) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.SortFunc(out, compare)
	return out
}
