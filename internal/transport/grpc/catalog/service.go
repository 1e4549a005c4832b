package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The catalog service speaks well-known protobuf types; payloads are the
// same camelCase JSON documents the REST API returns, carried as Structs.
const (
	ServiceName = "autocat.catalog.v1.CatalogService"

	ListVehiclesMethod     = "/" + ServiceName + "/ListVehicles"
	GetFilterOptionsMethod = "/" + ServiceName + "/GetFilterOptions"
	GetVehicleDetailMethod = "/" + ServiceName + "/GetVehicleDetail"
)

// CatalogServiceServer is the server API for the catalog service.
type CatalogServiceServer interface {
	ListVehicles(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFilterOptions(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetVehicleDetail(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// UnimplementedCatalogServiceServer answers Unimplemented for every method.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) ListVehicles(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVehicles not implemented")
}

func (UnimplementedCatalogServiceServer) GetFilterOptions(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFilterOptions not implemented")
}

func (UnimplementedCatalogServiceServer) GetVehicleDetail(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVehicleDetail not implemented")
}

// RegisterCatalogServiceServer registers srv on s.
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_ListVehicles_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListVehicles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListVehiclesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListVehicles(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetFilterOptions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetFilterOptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetFilterOptionsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetFilterOptions(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetVehicleDetail_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetVehicleDetail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetVehicleDetailMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetVehicleDetail(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for the catalog service.
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListVehicles", Handler: _CatalogService_ListVehicles_Handler},
		{MethodName: "GetFilterOptions", Handler: _CatalogService_GetFilterOptions_Handler},
		{MethodName: "GetVehicleDetail", Handler: _CatalogService_GetVehicleDetail_Handler},
	},
	Streams: []grpc.StreamDesc{},
}

// Client calls the catalog service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc in a catalog service client.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// ListVehicles returns one page of the filtered, sorted catalog.
func (c *Client) ListVehicles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListVehiclesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFilterOptions returns the values available to each listing filter.
func (c *Client) GetFilterOptions(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetFilterOptionsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetVehicleDetail returns the detail view of one vehicle with its similar vehicles.
func (c *Client) GetVehicleDetail(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetVehicleDetailMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
