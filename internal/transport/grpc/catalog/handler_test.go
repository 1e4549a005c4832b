package catalog

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/fixtures"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_filter_options"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/get_vehicle_detail"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/queries/list_vehicles"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/repo"
	"github.com/light-bringer/autocat-service/internal/transport/grpc/interceptors"
	"github.com/light-bringer/autocat-service/mocks"
)

func startServer(t *testing.T, store contracts.RecordStore) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.Recover(),
		interceptors.UnaryLogging(zap.NewNop()),
	))
	RegisterCatalogServiceServer(srv, NewHandler(
		list_vehicles.NewQuery(store),
		get_filter_options.NewQuery(store),
		get_vehicle_detail.NewQuery(store),
	))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func fixtureClient(t *testing.T) *Client {
	t.Helper()
	store, err := repo.NewMemoryStore(fixtures.Summaries(), fixtures.Details())
	require.NoError(t, err)
	return startServer(t, store)
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func keys(vs []domain.VehicleSummary) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Key)
	}
	return out
}

func TestListVehicles(t *testing.T) {
	client := fixtureClient(t)
	ctx := context.Background()

	out, err := client.ListVehicles(ctx, mustStruct(t, map[string]any{
		"sort":     "price_asc",
		"page":     2,
		"pageSize": 12,
	}))
	require.NoError(t, err)

	var resp domain.ListingResponse
	require.NoError(t, FromStruct(out, &resp))
	assert.Equal(t, []string{"12", "15", "5"}, keys(resp.Vehicles))
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.False(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrevious)
	assert.Equal(t, 13, resp.Pagination.ExhibitingFrom)
	assert.Equal(t, 15, resp.Pagination.ExhibitingTo)
}

func TestListVehicles_Filters(t *testing.T) {
	client := fixtureClient(t)

	out, err := client.ListVehicles(context.Background(), mustStruct(t, map[string]any{
		"brands":        []any{"Volkswagen", "Chevrolet"},
		"transmissions": []any{"Manual"},
		"yearMin":       2021,
	}))
	require.NoError(t, err)

	var resp domain.ListingResponse
	require.NoError(t, FromStruct(out, &resp))
	assert.Equal(t, []string{"3", "13"}, keys(resp.Vehicles))
	assert.Equal(t, 2021, *resp.AppliedFilters.YearMin)
}

func TestListVehicles_InvalidArgument(t *testing.T) {
	client := fixtureClient(t)

	for name, req := range map[string]map[string]any{
		"page size":       {"pageSize": 10},
		"year range":      {"yearMin": 2023, "yearMax": 2020},
		"price range":     {"priceMin": 90000, "priceMax": 10},
		"sort":            {"sort": "random"},
		"transmission":    {"transmissions": []any{"Hydraulic"}},
		"unknown field":   {"colour": "red"},
		"fractional year": {"yearMin": 2020.5},
		"negative page":   {"page": -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := client.ListVehicles(context.Background(), mustStruct(t, req))
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestGetFilterOptions(t *testing.T) {
	out, err := fixtureClient(t).GetFilterOptions(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)

	var opts domain.FilterOptions
	require.NoError(t, FromStruct(out, &opts))
	assert.Len(t, opts.Brands, 8)
	assert.Equal(t, []int{2023, 2022, 2021, 2020}, opts.Years)
}

func TestGetVehicleDetail(t *testing.T) {
	client := fixtureClient(t)
	ctx := context.Background()

	out, err := client.GetVehicleDetail(ctx, wrapperspb.String("2"))
	require.NoError(t, err)

	var view domain.VehicleDetailView
	require.NoError(t, FromStruct(out, &view))
	assert.Equal(t, "Corolla", view.Model)
	assert.Equal(t, []string{"1", "9", "10", "11", "12"}, keys(view.SimilarVehicles))

	_, err = client.GetVehicleDetail(ctx, wrapperspb.String("404"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetVehicleDetail(ctx, wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	store.EXPECT().AllSummaries(gomock.Any()).Return(nil, errors.New("spanner: session pool exhausted")).AnyTimes()

	_, err := startServer(t, store).GetFilterOptions(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.NotContains(t, status.Convert(err).Message(), "session pool")
}

func TestMapDomainErrorToGRPC(t *testing.T) {
	assert.NoError(t, mapDomainErrorToGRPC(nil))
	assert.Equal(t, codes.Internal, status.Code(mapDomainErrorToGRPC(errors.New("x"))))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(mapDomainErrorToGRPC(context.DeadlineExceeded)))
}
