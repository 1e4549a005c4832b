package domain

import "slices"

// Page size and page defaults applied when a request leaves them unset.
const (
	DefaultPage     = 1
	DefaultPageSize = 12
)

var pageSizes = []int{12, 24, 36, 48}

// PageSizes returns the allowed page sizes.
func PageSizes() []int {
	return slices.Clone(pageSizes)
}

// ValidPageSize reports whether n is one of the allowed page sizes.
func ValidPageSize(n int) bool {
	return slices.Contains(pageSizes, n)
}

// FilterCriteria is the set of constraints a listing applies. Empty sets
// and nil bounds mean "no constraint" on that dimension.
type FilterCriteria struct {
	Brands        []string
	Models        []string
	Transmissions []Transmission
	YearMin       *int
	YearMax       *int
	PriceMin      *float64
	PriceMax      *float64
}

// ListingRequest asks for one page of a filtered, ordered listing.
// Zero Page and PageSize mean "use the default".
type ListingRequest struct {
	Criteria FilterCriteria
	Sort     SortOrder
	Page     int
	PageSize int
}

// Normalize fills defaults. It never rejects input.
func (r ListingRequest) Normalize() ListingRequest {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	if !r.Sort.Valid() {
		r.Sort = SortRelevance
	}
	return r
}

// Validate is the check transports run before invoking the listing.
// The listing itself tolerates every violation reported here.
func (r ListingRequest) Validate() error {
	if r.Page < 0 {
		return ErrInvalidPage
	}
	if r.PageSize != 0 && !ValidPageSize(r.PageSize) {
		return ErrInvalidPageSize
	}
	if !r.Sort.Valid() {
		return ErrInvalidSortOrder
	}

	c := r.Criteria
	if (c.YearMin != nil && *c.YearMin < MinYear) || (c.YearMax != nil && *c.YearMax < MinYear) {
		return ErrInvalidYear
	}
	if (c.PriceMin != nil && *c.PriceMin < 0) || (c.PriceMax != nil && *c.PriceMax < 0) {
		return ErrInvalidPrice
	}
	if c.YearMin != nil && c.YearMax != nil && *c.YearMin > *c.YearMax {
		return ErrInvalidYearRange
	}
	if c.PriceMin != nil && c.PriceMax != nil && *c.PriceMin > *c.PriceMax {
		return ErrInvalidPriceRange
	}
	for _, t := range c.Transmissions {
		if _, err := ParseTransmission(string(t)); err != nil {
			return err
		}
	}
	return nil
}

// PaginationMetadata describes the page returned by a listing.
type PaginationMetadata struct {
	CurrentPage    int  `json:"currentPage"`
	PageSize       int  `json:"pageSize"`
	TotalPages     int  `json:"totalPages"`
	TotalCount     int  `json:"totalCount"`
	HasNext        bool `json:"hasNext"`
	HasPrevious    bool `json:"hasPrevious"`
	ExhibitingFrom int  `json:"exhibitingFrom"`
	ExhibitingTo   int  `json:"exhibitingTo"`
}

// AppliedFilters echoes the normalized criteria. Absent set filters are
// materialized as empty lists.
type AppliedFilters struct {
	Brands        []string       `json:"brands"`
	Models        []string       `json:"models"`
	YearMin       *int           `json:"yearMin,omitempty"`
	YearMax       *int           `json:"yearMax,omitempty"`
	PriceMin      *float64       `json:"priceMin,omitempty"`
	PriceMax      *float64       `json:"priceMax,omitempty"`
	Transmissions []Transmission `json:"transmissions"`
	Sort          SortOrder      `json:"sort"`
}

// ListingResponse is one page of results plus its metadata.
type ListingResponse struct {
	Vehicles       []VehicleSummary   `json:"vehicles"`
	Pagination     PaginationMetadata `json:"pagination"`
	AppliedFilters AppliedFilters     `json:"appliedFilters"`
}

// FilterOptions lists the attribute values currently present in the store.
type FilterOptions struct {
	Brands        []string            `json:"brands"`
	Models        []string            `json:"models"`
	Years         []int               `json:"years"`
	Transmissions []Transmission      `json:"transmissions"`
	ModelsByBrand map[string][]string `json:"modelsByBrand"`
}
