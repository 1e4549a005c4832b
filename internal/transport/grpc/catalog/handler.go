package catalog

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_filter_options"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_vehicle_detail"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/list_vehicles"
)

// Handler implements CatalogServiceServer.
// It's a thin coordinator that delegates to queries.
type Handler struct {
	UnimplementedCatalogServiceServer

	listVehicles  *list_vehicles.Query
	filterOptions *get_filter_options.Query
	vehicleDetail *get_vehicle_detail.Query
}

var _ CatalogServiceServer = (*Handler)(nil)

// NewHandler creates a new gRPC catalog handler.
func NewHandler(
	listVehicles *list_vehicles.Query,
	filterOptions *get_filter_options.Query,
	vehicleDetail *get_vehicle_detail.Query,
) *Handler {
	return &Handler{
		listVehicles:  listVehicles,
		filterOptions: filterOptions,
		vehicleDetail: vehicleDetail,
	}
}

// ListVehicles returns one page of the filtered, ordered listing.
func (h *Handler) ListVehicles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	listing, err := toListingRequest(req)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	resp, err := h.listVehicles.Execute(ctx, &list_vehicles.Request{
		Criteria: listing.Criteria,
		Sort:     listing.Sort,
		Page:     listing.Page,
		PageSize: listing.PageSize,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return encode(resp)
}

// GetFilterOptions returns the attribute values present in the catalog.
func (h *Handler) GetFilterOptions(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	opts, err := h.filterOptions.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return encode(opts)
}

// GetVehicleDetail returns the augmented detail of one vehicle.
func (h *Handler) GetVehicleDetail(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "vehicle key is required")
	}

	view, found, err := h.vehicleDetail.Execute(ctx, &get_vehicle_detail.Request{Key: req.GetValue()})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	if !found {
		return nil, mapDomainErrorToGRPC(domain.ErrVehicleNotFound)
	}

	return encode(view)
}

func encode(v any) (*structpb.Struct, error) {
	s, err := toStruct(v)
	if err != nil {
		return nil, mapDomainErrorToGRPC(fmt.Errorf("encode response: %w", err))
	}
	return s, nil
}
