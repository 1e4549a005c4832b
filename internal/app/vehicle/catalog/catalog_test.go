package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
	"github.com/light-bringer/autocat-service/internal/app/vehicle/fixtures"
)

func keys(records []domain.VehicleSummary) []string {
	out := make([]string, 0, len(records))
	for _, v := range records {
		out = append(out, v.Key)
	}
	return out
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestFilter(t *testing.T) {
	store := fixtures.Summaries()

	t.Run("empty criteria keeps everything in order", func(t *testing.T) {
		got := Filter(store, domain.FilterCriteria{})
		assert.Equal(t, keys(store), keys(got))
	})

	t.Run("brand set", func(t *testing.T) {
		got := Filter(store, domain.FilterCriteria{Brands: []string{"Honda"}})
		assert.Equal(t, []string{"1", "15"}, keys(got))
	})

	t.Run("dimensions combine with AND", func(t *testing.T) {
		got := Filter(store, domain.FilterCriteria{
			Brands:        []string{"Volkswagen", "Chevrolet"},
			Transmissions: []domain.Transmission{domain.TransmissionManual},
			YearMin:       intp(2021),
		})
		assert.Equal(t, []string{"3", "13"}, keys(got))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := Filter(store, domain.FilterCriteria{PriceMin: floatp(125000), PriceMax: floatp(135000)})
		assert.Equal(t, []string{"1", "2", "10"}, keys(got))

		got = Filter(store, domain.FilterCriteria{YearMin: intp(2020), YearMax: intp(2020)})
		assert.Equal(t, []string{"6"}, keys(got))
	})

	t.Run("inverted range yields nothing", func(t *testing.T) {
		got := Filter(store, domain.FilterCriteria{YearMin: intp(2023), YearMax: intp(2020)})
		assert.Empty(t, got)
	})

	t.Run("transmission filter skips records without one", func(t *testing.T) {
		records := []domain.VehicleSummary{{Key: "a"}, store[1]}
		got := Filter(records, domain.FilterCriteria{Transmissions: []domain.Transmission{domain.TransmissionCVT}})
		assert.Equal(t, []string{"2"}, keys(got))
	})

	t.Run("stricter criteria give a subsequence", func(t *testing.T) {
		loose := Filter(store, domain.FilterCriteria{YearMin: intp(2021)})
		strict := Filter(store, domain.FilterCriteria{YearMin: intp(2021), Brands: []string{"Jeep", "Fiat"}})

		i := 0
		for _, v := range loose {
			if i < len(strict) && strict[i].Key == v.Key {
				i++
			}
		}
		assert.Equal(t, len(strict), i, "strict result is not a subsequence of the loose one")
	})
}

func TestSort(t *testing.T) {
	store := fixtures.Summaries()

	tests := []struct {
		order domain.SortOrder
		want  []string
	}{
		{domain.SortRelevance, keys(store)},
		{domain.SortPriceAsc, []string{"6", "4", "14", "8", "3", "13", "7", "11", "9", "2", "10", "1", "12", "15", "5"}},
		{domain.SortPriceDesc, []string{"5", "15", "12", "1", "2", "10", "9", "11", "7", "13", "3", "8", "14", "4", "6"}},
		{domain.SortYearNewest, []string{"1", "3", "5", "8", "9", "12", "2", "7", "10", "13", "15", "4", "11", "14", "6"}},
		{domain.SortYearOldest, []string{"6", "4", "11", "14", "2", "7", "10", "13", "15", "1", "3", "5", "8", "9", "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys(Sort(store, tt.order)))
		})
	}

	t.Run("model_az", func(t *testing.T) {
		got := Sort(store, domain.SortModelAZ)
		models := make([]string, 0, 7)
		for _, v := range got[:7] {
			models = append(models, v.Model)
		}
		assert.Equal(t, []string{"Argo", "Civic", "Compass", "Corolla", "Creta", "Cronos", "Gol"}, models)
	})

	t.Run("model_za mirrors model_az without ties", func(t *testing.T) {
		az := keys(Sort(store, domain.SortModelAZ))
		za := keys(Sort(store, domain.SortModelZA))
		require.Len(t, za, len(az))
		for i := range az {
			assert.Equal(t, az[i], za[len(za)-1-i])
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := keys(store)
		_ = Sort(store, domain.SortPriceDesc)
		assert.Equal(t, before, keys(store))
	})

	t.Run("equal keys keep input order for every order", func(t *testing.T) {
		same := make([]domain.VehicleSummary, 5)
		for i := range same {
			same[i] = domain.VehicleSummary{Key: fmt.Sprint(i), Brand: "Fiat", Model: "Uno", Year: 2020, Price: 1000}
		}
		for _, o := range domain.SortOrders() {
			assert.Equal(t, keys(same), keys(Sort(same, o)), o.String())
		}
	})

	t.Run("nil input gives empty slice", func(t *testing.T) {
		got := Sort(nil, domain.SortPriceAsc)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestPaginate(t *testing.T) {
	items := make([]int, 15)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("first page", func(t *testing.T) {
		page, meta := Paginate(items, 1, 12)
		assert.Len(t, page, 12)
		assert.Equal(t, domain.PaginationMetadata{
			CurrentPage: 1, PageSize: 12, TotalPages: 2, TotalCount: 15,
			HasNext: true, HasPrevious: false, ExhibitingFrom: 1, ExhibitingTo: 12,
		}, meta)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, meta := Paginate(items, 2, 12)
		assert.Equal(t, []int{13, 14, 15}, page)
		assert.Equal(t, 13, meta.ExhibitingFrom)
		assert.Equal(t, 15, meta.ExhibitingTo)
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrevious)
	})

	t.Run("page past the end clamps to the last page", func(t *testing.T) {
		last, lastMeta := Paginate(items, 2, 12)
		beyond, beyondMeta := Paginate(items, 7, 12)
		assert.Equal(t, last, beyond)
		assert.Equal(t, lastMeta, beyondMeta)
	})

	t.Run("empty input", func(t *testing.T) {
		page, meta := Paginate([]int{}, 3, 12)
		assert.Empty(t, page)
		assert.Equal(t, domain.PaginationMetadata{
			CurrentPage: 1, PageSize: 12, TotalPages: 1, TotalCount: 0,
			ExhibitingFrom: 0, ExhibitingTo: 0,
		}, meta)
	})

	t.Run("pages cover the input exactly once", func(t *testing.T) {
		for _, size := range domain.PageSizes() {
			many := make([]int, 100)
			for i := range many {
				many[i] = i
			}
			_, meta := Paginate(many, 1, size)

			var all []int
			for p := 1; p <= meta.TotalPages; p++ {
				page, _ := Paginate(many, p, size)
				all = append(all, page...)
			}
			assert.Equal(t, many, all, "page size %d", size)
		}
	})

	t.Run("returned page is a copy", func(t *testing.T) {
		page, _ := Paginate(items, 1, 12)
		page[0] = -1
		assert.Equal(t, 1, items[0])
	})
}

func TestList(t *testing.T) {
	store := fixtures.Summaries()

	t.Run("cheapest twelve first", func(t *testing.T) {
		resp := List(store, domain.ListingRequest{Page: 1, PageSize: 12, Sort: domain.SortPriceAsc})

		assert.Equal(t, []string{"6", "4", "14", "8", "3", "13", "7", "11", "9", "2", "10", "1"}, keys(resp.Vehicles))
		assert.Equal(t, 2, resp.Pagination.TotalPages)
		assert.Equal(t, 15, resp.Pagination.TotalCount)
		assert.True(t, resp.Pagination.HasNext)
		assert.False(t, resp.Pagination.HasPrevious)
		assert.Equal(t, 1, resp.Pagination.ExhibitingFrom)
		assert.Equal(t, 12, resp.Pagination.ExhibitingTo)
	})

	t.Run("honda in store order", func(t *testing.T) {
		resp := List(store, domain.ListingRequest{Criteria: domain.FilterCriteria{Brands: []string{"Honda"}}})

		require.Len(t, resp.Vehicles, 2)
		assert.Equal(t, "Civic", resp.Vehicles[0].Model)
		assert.Equal(t, "HR-V", resp.Vehicles[1].Model)
		assert.Equal(t, 2, resp.Pagination.TotalCount)
		assert.Equal(t, []string{"Honda"}, resp.AppliedFilters.Brands)
	})

	t.Run("no matches", func(t *testing.T) {
		resp := List(store, domain.ListingRequest{Criteria: domain.FilterCriteria{PriceMin: floatp(200000)}})

		assert.NotNil(t, resp.Vehicles)
		assert.Empty(t, resp.Vehicles)
		assert.Equal(t, domain.PaginationMetadata{
			CurrentPage: 1, PageSize: 12, TotalPages: 1, TotalCount: 0,
		}, resp.Pagination)
	})

	t.Run("applied filters are normalized", func(t *testing.T) {
		resp := List(store, domain.ListingRequest{})

		assert.Equal(t, domain.AppliedFilters{
			Brands:        []string{},
			Models:        []string{},
			Transmissions: []domain.Transmission{},
			Sort:          domain.SortRelevance,
		}, resp.AppliedFilters)
		assert.Equal(t, 12, resp.Pagination.PageSize)
	})

	t.Run("identical input gives identical output", func(t *testing.T) {
		req := domain.ListingRequest{Sort: domain.SortModelZA, PageSize: 24}
		assert.Equal(t, List(store, req), List(store, req))
	})

	t.Run("echo does not alias request slices", func(t *testing.T) {
		brands := []string{"Fiat"}
		resp := List(store, domain.ListingRequest{Criteria: domain.FilterCriteria{Brands: brands}})
		resp.AppliedFilters.Brands[0] = "changed"
		assert.Equal(t, "Fiat", brands[0])
	})
}

func TestOptions(t *testing.T) {
	opts := Options(fixtures.Summaries())

	assert.Equal(t, []string{"Chevrolet", "Fiat", "Honda", "Hyundai", "Jeep", "Nissan", "Toyota", "Volkswagen"}, opts.Brands)
	assert.Equal(t, []int{2023, 2022, 2021, 2020}, opts.Years)
	assert.Equal(t, []domain.Transmission{domain.TransmissionAutomatic, domain.TransmissionCVT, domain.TransmissionManual}, opts.Transmissions)
	assert.Len(t, opts.Models, 15)
	assert.IsNonDecreasing(t, opts.Models)
	assert.Equal(t, []string{"Civic", "HR-V"}, opts.ModelsByBrand["Honda"])
	assert.Equal(t, []string{"Gol", "Polo", "T-Cross"}, opts.ModelsByBrand["Volkswagen"])
	assert.Len(t, opts.ModelsByBrand, 8)

	t.Run("absent transmissions are skipped and duplicates collapse", func(t *testing.T) {
		opts := Options([]domain.VehicleSummary{
			{Key: "a", Brand: "Fiat", Model: "Uno", Year: 2010},
			{Key: "b", Brand: "Fiat", Model: "Uno", Year: 2010},
		})
		assert.Empty(t, opts.Transmissions)
		assert.NotNil(t, opts.Transmissions)
		assert.Equal(t, []string{"Uno"}, opts.Models)
		assert.Equal(t, []int{2010}, opts.Years)
	})

	t.Run("empty store", func(t *testing.T) {
		opts := Options(nil)
		assert.Empty(t, opts.Brands)
		assert.NotNil(t, opts.Brands)
		assert.Empty(t, opts.ModelsByBrand)
	})
}

func TestSimilar(t *testing.T) {
	store := fixtures.Summaries()

	t.Run("civic", func(t *testing.T) {
		got := Similar(store[0], store)
		assert.Equal(t, []string{"2", "9", "10", "12", "15"}, keys(got))
	})

	t.Run("corolla", func(t *testing.T) {
		got := Similar(store[1], store)
		assert.Equal(t, []string{"1", "9", "10", "11", "12"}, keys(got))
	})

	t.Run("band edges are inclusive", func(t *testing.T) {
		target := domain.VehicleSummary{Key: "t", Brand: "X", Price: 100}
		pool := []domain.VehicleSummary{
			{Key: "low", Brand: "Y", Price: 80},
			{Key: "high", Brand: "Y", Price: 120},
			{Key: "out", Brand: "Y", Price: 121},
		}
		assert.Equal(t, []string{"low", "high"}, keys(Similar(target, pool)))
	})

	t.Run("capped and never includes the target", func(t *testing.T) {
		pool := make([]domain.VehicleSummary, 0, 20)
		for i := range 20 {
			pool = append(pool, domain.VehicleSummary{Key: fmt.Sprint(i), Brand: "Fiat", Price: float64(i)})
		}
		got := Similar(pool[3], pool)
		assert.Len(t, got, MaxSimilar)
		assert.NotContains(t, keys(got), "3")
		assert.Equal(t, []string{"0", "1", "2", "4", "5", "6"}, keys(got))
	})
}

func TestAugment(t *testing.T) {
	store := fixtures.Summaries()
	detail := fixtures.Details()["1"]

	view := Augment(detail, store)

	assert.Equal(t, detail, view.VehicleDetail)
	assert.Equal(t, []string{"2", "9", "10", "12", "15"}, keys(view.SimilarVehicles))
	assert.Equal(t, []string{"Brand", "Price"}, view.SimilarityCriteria)
	assert.Equal(t, "carousel", view.DisplayFormat)
	assert.Equal(t, []string{"photo", "brand", "model", "year", "price", "mileage"}, view.CardFields)
	assert.NotContains(t, keys(view.SimilarVehicles), "1")
}
