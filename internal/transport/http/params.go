package http

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// Query parameter names of GET /api/v1/vehicles. Set filters repeat:
// ?brand=Honda&brand=Toyota.
const (
	paramBrand        = "brand"
	paramModel        = "model"
	paramTransmission = "transmission"
	paramYearMin      = "yearMin"
	paramYearMax      = "yearMax"
	paramPriceMin     = "priceMin"
	paramPriceMax     = "priceMax"
	paramSort         = "sort"
	paramPage         = "page"
	paramPageSize     = "pageSize"
)

// parseListingRequest reads and validates listing parameters. Explicit
// out-of-range values are rejected here; omitted ones take the defaults.
func parseListingRequest(q url.Values) (domain.ListingRequest, error) {
	var req domain.ListingRequest
	var err error

	req.Criteria.Brands = nonEmpty(q[paramBrand])
	req.Criteria.Models = nonEmpty(q[paramModel])

	for _, raw := range nonEmpty(q[paramTransmission]) {
		t, err := domain.ParseTransmission(raw)
		if err != nil {
			return req, err
		}
		req.Criteria.Transmissions = append(req.Criteria.Transmissions, t)
	}

	if req.Criteria.YearMin, err = optionalInt(q, paramYearMin, domain.ErrInvalidYear); err != nil {
		return req, err
	}
	if req.Criteria.YearMax, err = optionalInt(q, paramYearMax, domain.ErrInvalidYear); err != nil {
		return req, err
	}
	if req.Criteria.PriceMin, err = optionalFloat(q, paramPriceMin, domain.ErrInvalidPrice); err != nil {
		return req, err
	}
	if req.Criteria.PriceMax, err = optionalFloat(q, paramPriceMax, domain.ErrInvalidPrice); err != nil {
		return req, err
	}

	if req.Sort, err = domain.ParseSortOrder(q.Get(paramSort)); err != nil {
		return req, err
	}

	page, err := optionalInt(q, paramPage, domain.ErrInvalidPage)
	if err != nil {
		return req, err
	}
	if page != nil {
		if *page < 1 {
			return req, domain.ErrInvalidPage
		}
		req.Page = *page
	}

	size, err := optionalInt(q, paramPageSize, domain.ErrInvalidPageSize)
	if err != nil {
		return req, err
	}
	if size != nil {
		if !domain.ValidPageSize(*size) {
			return req, domain.ErrInvalidPageSize
		}
		req.PageSize = *size
	}

	return req, req.Validate()
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func optionalInt(q url.Values, name string, sentinel error) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", sentinel, name, raw)
	}
	return &n, nil
}

func optionalFloat(q url.Values, name string, sentinel error) (*float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %s=%q", sentinel, name, raw)
	}
	return &f, nil
}
