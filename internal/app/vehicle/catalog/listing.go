package catalog

import (
	"slices"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// List runs Filter, Sort and Paginate over records, in that order.
// Pagination counts the filtered set, never the raw store.
func List(records []domain.VehicleSummary, req domain.ListingRequest) domain.ListingResponse {
	req = req.Normalize()

	matched := Filter(records, req.Criteria)
	ordered := Sort(matched, req.Sort)
	page, meta := Paginate(ordered, req.Page, req.PageSize)

	return domain.ListingResponse{
		Vehicles:       page,
		Pagination:     meta,
		AppliedFilters: Applied(req),
	}
}

// Applied echoes the normalized criteria of req. Absent sets become empty lists.
func Applied(req domain.ListingRequest) domain.AppliedFilters {
	c := req.Criteria
	return domain.AppliedFilters{
		Brands:        nonNil(c.Brands),
		Models:        nonNil(c.Models),
		YearMin:       c.YearMin,
		YearMax:       c.YearMax,
		PriceMin:      c.PriceMin,
		PriceMax:      c.PriceMax,
		Transmissions: nonNil(c.Transmissions),
		Sort:          req.Sort,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
