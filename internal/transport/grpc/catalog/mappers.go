package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// listVehiclesRequest is the accepted shape of a ListVehicles Struct.
type listVehiclesRequest struct {
	Brands        []string `json:"brands"`
	Models        []string `json:"models"`
	Transmissions []string `json:"transmissions"`
	YearMin       *int     `json:"yearMin"`
	YearMax       *int     `json:"yearMax"`
	PriceMin      *float64 `json:"priceMin"`
	PriceMax      *float64 `json:"priceMax"`
	Sort          string   `json:"sort"`
	Page          int      `json:"page"`
	PageSize      int      `json:"pageSize"`
}

// toListingRequest decodes and validates a ListVehicles request. Zero page
// and pageSize select the defaults.
func toListingRequest(s *structpb.Struct) (domain.ListingRequest, error) {
	var req domain.ListingRequest

	raw, err := protojson.Marshal(s)
	if err != nil {
		return req, fmt.Errorf("%w: %w", errMalformedRequest, err)
	}

	var dto listVehiclesRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dto); err != nil {
		return req, fmt.Errorf("%w: %w", errMalformedRequest, err)
	}

	if dto.Page < 0 {
		return req, domain.ErrInvalidPage
	}

	req.Criteria = domain.FilterCriteria{
		Brands:   dto.Brands,
		Models:   dto.Models,
		YearMin:  dto.YearMin,
		YearMax:  dto.YearMax,
		PriceMin: dto.PriceMin,
		PriceMax: dto.PriceMax,
	}
	for _, raw := range dto.Transmissions {
		t, err := domain.ParseTransmission(raw)
		if err != nil {
			return req, err
		}
		req.Criteria.Transmissions = append(req.Criteria.Transmissions, t)
	}

	if req.Sort, err = domain.ParseSortOrder(dto.Sort); err != nil {
		return req, err
	}
	req.Page = dto.Page
	req.PageSize = dto.PageSize

	return req, req.Validate()
}

// toStruct encodes v as JSON and re-reads it as a Struct.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// FromStruct decodes a response Struct into v. Client helper.
func FromStruct(s *structpb.Struct, v any) error {
	raw, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
